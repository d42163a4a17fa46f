// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"image"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/events"
)

// Dispatcher is implemented by [*Component] and [*Container]:
// anything that can be placed in a container and receive events.
type Dispatcher interface {
	// AsComponent returns the underlying component.
	AsComponent() *Component

	// Dispatch delivers the event, in the receiver's coordinates,
	// through the full dispatch chain. The returned error joins any
	// handler failures; delivery is never aborted by them.
	Dispatch(e events.Event) error
}

// Component is a visual plot element that owns an ordered collection of
// tools, at most one active tool, and ordered overlay and underlay
// decorations. See the package documentation for the dispatch order.
type Component struct {

	// Name identifies the component within its container.
	Name string

	// Size is the size of the component in its own coordinates.
	// Its placement is owned by the parent container.
	Size image.Point

	// Overlays are the decorations drawn over the component,
	// in drawing and dispatch order.
	Overlays []Decoration

	// Underlays are the decorations drawn under the component,
	// in drawing and dispatch order.
	Underlays []Decoration

	// Listeners are the component's own default handlers, see [Component.On].
	Listeners events.Listeners

	// Observe, if set, is called for every delivery made by this component
	// and by its descendants that do not set their own.
	Observe func(d Delivery)

	tools toolList

	// active is the tool holding the active slot, if any. It is always
	// a member of tools.
	active Tool

	// this is the outermost dispatcher, the Container for containers.
	this Dispatcher

	// self runs the component's own handling step.
	self func(e events.Event) error

	parent *Container
	scene  *Scene
}

// NewComponent returns a new component with the given name and size.
func NewComponent(name string, size image.Point) *Component {
	c := &Component{}
	c.init(c, name, size)
	return c
}

func (c *Component) init(this Dispatcher, name string, size image.Point) {
	c.Name = name
	c.Size = size
	c.this = this
	c.self = c.callListeners
}

// AsComponent satisfies the [Dispatcher] interface.
func (c *Component) AsComponent() *Component {
	return c
}

// On adds a default handler for the given event type. Handlers run
// last-added first, stopping when one marks the event handled.
func (c *Component) On(typ events.Types, fun func(e events.Event)) {
	c.Listeners.Add(typ, fun)
}

// AddOverlay appends overlay decorations.
func (c *Component) AddOverlay(ds ...Decoration) {
	c.Overlays = append(c.Overlays, ds...)
}

// AddUnderlay appends underlay decorations.
func (c *Component) AddUnderlay(ds ...Decoration) {
	c.Underlays = append(c.Underlays, ds...)
}

// Bounds returns the component rectangle in its own coordinates.
func (c *Component) Bounds() image.Rectangle {
	return image.Rectangle{Max: c.Size}
}

// Parent returns the container holding the component, or nil.
func (c *Component) Parent() *Container {
	return c.parent
}

// Scene returns the scene of the root container above this component, or nil.
func (c *Component) Scene() *Scene {
	cur := c
	for cur.parent != nil {
		cur = cur.parent.AsComponent()
	}
	return cur.scene
}

// ScenePos returns the position of the component's origin in the
// coordinates of the root of its hierarchy.
func (c *Component) ScenePos() image.Point {
	var pos image.Point
	for cur := c; cur.parent != nil; cur = cur.parent.AsComponent() {
		off, _ := cur.parent.Offset(cur.this)
		pos = pos.Add(off)
	}
	return pos
}

// isAncestorOf returns whether c is o or one of the containers above o.
func (c *Component) isAncestorOf(o *Component) bool {
	for cur := o; cur != nil; {
		if cur == c {
			return true
		}
		if cur.parent == nil {
			break
		}
		cur = cur.parent.AsComponent()
	}
	return false
}

// Path returns the slash separated names from the root to this component.
func (c *Component) Path() string {
	var names []string
	for cur := c; cur != nil; {
		names = append(names, cur.Name)
		if cur.parent == nil {
			break
		}
		cur = cur.parent.AsComponent()
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

////////  Tools

// AddTool appends the tool to the tool collection. Insertion order is the
// order in which listener tools are notified. A tool can only be attached
// to one component at a time and its name must be non-empty and unique
// on the component.
func (c *Component) AddTool(t Tool) error {
	tb := t.AsToolBase()
	if tb.comp != nil {
		return ErrToolAttached
	}
	if err := c.tools.add(t); err != nil {
		return err
	}
	if tb.This == nil {
		tb.This = t
	}
	tb.comp = c
	return nil
}

// RemoveTool removes the named tool from the component and returns it.
// A tool that is not idle is first reset with [ToolBase.Reset]; for an
// active tool this is a forced deactivation, so the active slot never
// refers to a detached tool.
func (c *Component) RemoveTool(name string) (Tool, error) {
	t := c.tools.at(name)
	if t == nil {
		return nil, ErrUnknownTool
	}
	tb := t.AsToolBase()
	if tb.State() != Idle || c.active == t {
		tb.Reset()
		c.releaseActive(t)
	}
	c.tools.remove(t)
	tb.comp = nil
	return t, nil
}

// Tool returns the tool with the given name, or nil.
func (c *Component) Tool(name string) Tool {
	return c.tools.at(name)
}

// Tools returns the tools in insertion order.
func (c *Component) Tools() []Tool {
	return c.tools.snapshot()
}

// NumTools returns the number of tools on the component.
func (c *Component) NumTools() int {
	return c.tools.len()
}

////////  Active tool slot

// ActiveTool returns the active tool, or nil if there is none.
func (c *Component) ActiveTool() Tool {
	return c.active
}

// TryActivate claims the active slot for the given tool, which must be a
// captive tool of this component. It is a compare-and-set: it succeeds only
// if the slot is empty or already holds the tool, and never displaces
// another active tool. It does not change the tool's state; tools call
// it through [ToolBase.Activate].
func (c *Component) TryActivate(t Tool) bool {
	if !c.tools.contains(t) || !t.AsToolBase().Caps.Has(Captive) {
		return false
	}
	switch c.active {
	case t:
		return true
	case nil:
		c.active = t
		slog.Debug("tool activated", "component", c.Path(), "tool", t.AsToolBase().Name)
		return true
	}
	return false
}

// SetActiveTool activates the given tool on behalf of application code,
// such as a toolbar button. The tool must be a captive tool in this
// component's collection, and the slot must be empty or hold it already.
func (c *Component) SetActiveTool(t Tool) error {
	if !c.tools.contains(t) {
		return ErrNotAssociated
	}
	tb := t.AsToolBase()
	if !tb.Caps.Has(Captive) {
		return ErrNotCaptive
	}
	if !c.TryActivate(t) {
		return ErrActiveToolSet
	}
	tb.forceActive()
	return nil
}

// ClearActiveTool forcibly deactivates the active tool, if any, by
// resetting it to [Idle].
func (c *Component) ClearActiveTool() {
	at := c.active
	if at == nil {
		return
	}
	at.AsToolBase().Reset()
	c.active = nil
}

// releaseActive clears the slot if it holds the given tool.
func (c *Component) releaseActive(t Tool) bool {
	if t == nil || c.active != t {
		return false
	}
	c.active = nil
	slog.Debug("tool deactivated", "component", c.Path(), "tool", t.AsToolBase().Name)
	return true
}

////////  Dispatch

// Dispatch delivers the event through the component's dispatch chain:
//
//  1. the active tool, stopping entirely if it handles the event;
//  2. the overlays, in order;
//  3. the component's own handling (its listeners, and the children of
//     a container);
//  4. the underlays, in order;
//  5. every listener tool, in insertion order, regardless of whether the
//     event has been handled.
//
// Steps 2 to 4 stop at the first handler that marks the event handled,
// continuing with step 5. The tool that received the event in step 1 is
// not delivered to again in step 5.
//
// A handler that panics is isolated: the panic is recovered and logged,
// delivery continues with the next handler, and the failures are joined
// into the returned error. An active tool that panics is reset.
func (c *Component) Dispatch(e events.Event) error {
	var errs []error
	at := c.ActiveTool()
	if at != nil {
		if err := c.deliver(e, StageActive, at.AsToolBase().Name, at.HandleEvent); err != nil {
			errs = append(errs, err)
			if c.active == at {
				c.ClearActiveTool()
			}
		}
		if e.IsHandled() {
			return errors.Join(errs...)
		}
	}

	errs = c.deliverDecorations(e, StageOverlay, c.Overlays, errs)
	if !e.IsHandled() {
		if err := c.deliverSelf(e); err != nil {
			errs = append(errs, err)
		}
	}
	errs = c.deliverDecorations(e, StageUnderlay, c.Underlays, errs)

	for _, t := range c.tools.snapshot() {
		if t == at || !c.tools.contains(t) {
			continue
		}
		tb := t.AsToolBase()
		if !tb.Caps.Has(Listener) {
			continue
		}
		if err := c.deliver(e, StageListener, tb.Name, t.HandleEvent); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Component) deliverDecorations(e events.Event, st Stage, ds []Decoration, errs []error) []error {
	for i, d := range ds {
		if e.IsHandled() {
			break
		}
		if err := c.deliver(e, st, strconv.Itoa(i), d.HandleEvent); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// deliverSelf runs the self step. Errors from a container's children are
// already reported by the children, so only a panic in the step itself is
// wrapped here.
func (c *Component) deliverSelf(e events.Event) error {
	var childErr error
	err := c.deliver(e, StageSelf, "self", func(e events.Event) {
		childErr = c.self(e)
	})
	return errors.Join(err, childErr)
}

func (c *Component) callListeners(e events.Event) error {
	c.Listeners.Call(e)
	return nil
}

// deliver calls fun with the event, recovering a panic into a
// [*errors.ToolError], and reports the delivery to the observer.
func (c *Component) deliver(e events.Event, st Stage, target string, fun func(e events.Event)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewToolError(r, c.Path(), st.String(), target)
			slog.Error("recovered handler panic", "component", c.Path(), "stage", st, "target", target, "err", err)
		}
		if obs := c.observer(); obs != nil {
			obs(Delivery{Path: c.Path(), Stage: st, Target: target, Type: e.Type(), Pos: e.Pos(), Handled: e.IsHandled(), Err: err})
		}
	}()
	fun(e)
	return nil
}

func (c *Component) observer() func(d Delivery) {
	for cur := c; cur != nil; {
		if cur.Observe != nil {
			return cur.Observe
		}
		if cur.parent == nil {
			break
		}
		cur = cur.parent.AsComponent()
	}
	return nil
}
