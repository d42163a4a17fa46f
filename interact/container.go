// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"image"
	"slices"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/events"
)

// Container is a composite component holding child components at
// container-owned positions. It has its own tools and decorations, and
// its own handling step forwards events to the children under the
// pointer before calling its own listeners.
type Container struct {
	Component

	children []*child

	// hovered are the children the pointer was last over, for
	// synthesizing MouseEnter and MouseLeave.
	hovered []Dispatcher
}

// child is a child dispatcher with its placement in the container.
type child struct {
	d    Dispatcher
	rect image.Rectangle
}

// NewContainer returns a new container with the given name and size.
func NewContainer(name string, size image.Point) *Container {
	ct := &Container{}
	ct.init(ct, name, size)
	ct.self = ct.dispatchSelf
	return ct
}

// AddChild adds the child at the given rectangle, in the container's
// coordinates. Children added later are painted on top of earlier ones.
// The child's size is set to the size of the rectangle. Child names
// must be unique in the container.
func (ct *Container) AddChild(d Dispatcher, rect image.Rectangle) error {
	c := d.AsComponent()
	if c.parent != nil || c.scene != nil {
		return ErrChildAttached
	}
	if c.isAncestorOf(&ct.Component) {
		return ErrChildCycle
	}
	if ct.childIndex(c.Name) >= 0 {
		return ErrDuplicateChild
	}
	c.parent = ct
	c.Size = rect.Size()
	ct.children = append(ct.children, &child{d: d, rect: rect.Canon()})
	return nil
}

// RemoveChild removes the named child and returns it. The active tools
// of the child and its descendants are reset, and a pointer capture held
// by any of them is released, since they can no longer receive events.
func (ct *Container) RemoveChild(name string) (Dispatcher, error) {
	idx := ct.childIndex(name)
	if idx < 0 {
		return nil, ErrUnknownChild
	}
	d := ct.children[idx].d
	sc := ct.Scene()
	walk(d, func(c *Component) {
		c.ClearActiveTool()
		if sc != nil && sc.owner != nil && sc.owner.AsComponent() == c {
			sc.ReleaseMouseOwner(sc.owner)
		}
	})
	ct.children = slices.Delete(ct.children, idx, idx+1)
	ct.hovered = slices.DeleteFunc(ct.hovered, func(h Dispatcher) bool { return h == d })
	d.AsComponent().parent = nil
	return d, nil
}

// Child returns the named child, or nil.
func (ct *Container) Child(name string) Dispatcher {
	if idx := ct.childIndex(name); idx >= 0 {
		return ct.children[idx].d
	}
	return nil
}

// Children returns the children in paint order, bottom-most first.
func (ct *Container) Children() []Dispatcher {
	res := make([]Dispatcher, len(ct.children))
	for i, ch := range ct.children {
		res[i] = ch.d
	}
	return res
}

// ChildRect returns the rectangle of the named child.
func (ct *Container) ChildRect(name string) (image.Rectangle, bool) {
	if idx := ct.childIndex(name); idx >= 0 {
		return ct.children[idx].rect, true
	}
	return image.Rectangle{}, false
}

// SetChildRect moves the named child to the given rectangle.
func (ct *Container) SetChildRect(name string, rect image.Rectangle) error {
	idx := ct.childIndex(name)
	if idx < 0 {
		return ErrUnknownChild
	}
	ct.children[idx].rect = rect.Canon()
	ct.children[idx].d.AsComponent().Size = rect.Size()
	return nil
}

// RaiseChild moves the named child to the top of the paint order.
func (ct *Container) RaiseChild(name string) error {
	idx := ct.childIndex(name)
	if idx < 0 {
		return ErrUnknownChild
	}
	ch := ct.children[idx]
	ct.children = append(slices.Delete(ct.children, idx, idx+1), ch)
	return nil
}

// ChildrenAt returns the children whose rectangles contain the point,
// top-most first.
func (ct *Container) ChildrenAt(p image.Point) []Dispatcher {
	var res []Dispatcher
	for i := len(ct.children) - 1; i >= 0; i-- {
		if p.In(ct.children[i].rect) {
			res = append(res, ct.children[i].d)
		}
	}
	return res
}

// Offset returns the position of the child's origin in the container's
// coordinates.
func (ct *Container) Offset(d Dispatcher) (image.Point, bool) {
	for _, ch := range ct.children {
		if ch.d == d {
			return ch.rect.Min, true
		}
	}
	return image.Point{}, false
}

// walk calls fun for the component of d and all of its descendants.
func walk(d Dispatcher, fun func(c *Component)) {
	fun(d.AsComponent())
	if ct, ok := d.(*Container); ok {
		for _, ch := range ct.children {
			walk(ch.d, fun)
		}
	}
}

func (ct *Container) childIndex(name string) int {
	return slices.IndexFunc(ct.children, func(ch *child) bool {
		return ch.d.AsComponent().Name == name
	})
}

// dispatchSelf is the container's own handling step: children first,
// then the container's listeners if no child handled the event.
func (ct *Container) dispatchSelf(e events.Event) error {
	err := ct.dispatchChildren(e)
	if !e.IsHandled() {
		ct.Listeners.Call(e)
	}
	return err
}

// dispatchChildren culls the children by the event position and runs
// the full dispatch of each child under it, top-most first, with the
// event offset into the child's coordinates. It stops after the first
// child that handles the event. Enter and leave events only update the
// hovered children.
func (ct *Container) dispatchChildren(e events.Event) error {
	var errs []error
	errs = ct.updateHover(e, errs)
	switch e.Type() {
	case events.MouseEnter, events.MouseLeave:
		return errors.Join(errs...)
	}
	pos := e.Pos()
	for i := len(ct.children) - 1; i >= 0; i-- {
		ch := ct.children[i]
		if !pos.In(ch.rect) {
			continue
		}
		if err := ct.dispatchTo(ch, e); err != nil {
			errs = append(errs, err)
		}
		if e.IsHandled() {
			break
		}
	}
	return errors.Join(errs...)
}

func (ct *Container) dispatchTo(ch *child, e events.Event) error {
	off := ch.rect.Min
	e.Offset(off)
	defer e.Offset(off.Mul(-1))
	return ch.d.Dispatch(e)
}

// updateHover sends MouseLeave to the children the pointer has left and
// MouseEnter to the ones it has entered, for pointer motion and for the
// container itself being entered. When the container is left, all hovered
// children are left. Crossing events are not routed to children otherwise.
func (ct *Container) updateHover(e events.Event, errs []error) []error {
	var now []Dispatcher
	switch e.Type() {
	case events.MouseMove, events.MouseDrag, events.MouseEnter:
		now = ct.ChildrenAt(e.Pos())
	case events.MouseLeave:
	default:
		return errs
	}
	for _, h := range ct.hovered {
		if slices.Contains(now, h) {
			continue
		}
		if err := ct.sendCrossing(h, events.MouseLeave, e); err != nil {
			errs = append(errs, err)
		}
	}
	for _, n := range now {
		if slices.Contains(ct.hovered, n) {
			continue
		}
		if err := ct.sendCrossing(n, events.MouseEnter, e); err != nil {
			errs = append(errs, err)
		}
	}
	ct.hovered = now
	return errs
}

func (ct *Container) sendCrossing(d Dispatcher, typ events.Types, e events.Event) error {
	idx := slices.IndexFunc(ct.children, func(ch *child) bool { return ch.d == d })
	if idx < 0 {
		return nil
	}
	ce := events.NewMouseCrossing(typ, e.WindowPos(), e.Modifiers())
	ce.Offset(e.NetOffset())
	return ct.dispatchTo(ct.children[idx], ce)
}
