// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"cogentcore.org/plotinteract/events"
)

// ToolBase implements the [Tool] interface and the activation state
// machine shared by all tools. It must be embedded in a concrete tool
// type and initialized with [ToolBase.InitTool]:
//
//	func NewPanner(name string) *Panner {
//		p := &Panner{}
//		p.InitTool(p, name, interact.Listener|interact.Captive)
//		p.On(interact.Idle, events.MouseDown, p.startPan)
//		return p
//	}
type ToolBase struct {

	// Name identifies the tool within its component.
	Name string

	// Caps declares how the tool takes part in dispatch.
	Caps Capabilities

	// This is the concrete tool embedding this base.
	This Tool

	state States

	// comp is the component the tool is attached to, if any.
	comp *Component

	// captured is the scene the tool took the pointer capture of, if any.
	// It is kept so the capture can be released after the component
	// has been detached from the scene.
	captured *Scene

	handlers map[handlerKey][]func(e events.Event)

	onReset []func()
}

type handlerKey struct {
	state States
	typ   events.Types
}

// InitTool initializes the tool base for the given concrete tool.
func (tb *ToolBase) InitTool(this Tool, name string, caps Capabilities) {
	tb.This = this
	tb.Name = name
	tb.Caps = caps
	tb.state = Idle
}

// AsToolBase satisfies the [Tool] interface.
func (tb *ToolBase) AsToolBase() *ToolBase {
	return tb
}

// On registers a handler called for events of the given type while the
// tool is in the given state, or in every state for [AnyState]. Handlers
// for the state the tool is in when the event arrives run first, in
// registration order, followed by the AnyState handlers.
func (tb *ToolBase) On(state States, typ events.Types, fun func(e events.Event)) {
	if tb.handlers == nil {
		tb.handlers = make(map[handlerKey][]func(events.Event))
	}
	k := handlerKey{state, typ}
	tb.handlers[k] = append(tb.handlers[k], fun)
}

// OnReset registers a function called whenever the tool is reset to
// [Idle] through [ToolBase.Reset], including forced deactivation by
// its component.
func (tb *ToolBase) OnReset(fun func()) {
	tb.onReset = append(tb.onReset, fun)
}

// HandleEvent calls the handlers registered for the current state and
// the event type.
func (tb *ToolBase) HandleEvent(e events.Event) {
	typ := e.Type()
	for _, fun := range tb.handlers[handlerKey{tb.state, typ}] {
		fun(e)
	}
	for _, fun := range tb.handlers[handlerKey{AnyState, typ}] {
		fun(e)
	}
}

// State returns the activation state of the tool.
func (tb *ToolBase) State() States {
	return tb.state
}

// IsActive returns whether the tool holds the active slot of its component.
func (tb *ToolBase) IsActive() bool {
	return tb.state == Active
}

// Component returns the component the tool is attached to, or nil.
func (tb *ToolBase) Component() *Component {
	return tb.comp
}

// Listen moves an idle tool to [Listening]. It has no effect on other
// tools. It returns false if the tool is already active.
func (tb *ToolBase) Listen() bool {
	switch tb.state {
	case Idle:
		tb.state = Listening
		return true
	case Listening:
		return true
	}
	return false
}

// Activate moves a listening tool to [Active] by claiming the active slot
// of its component with [Component.TryActivate]. If another tool already
// holds the slot, the tool stays [Listening] and Activate returns false.
// Calling it on an active tool returns true.
func (tb *ToolBase) Activate() bool {
	switch tb.state {
	case Active:
		return true
	case Idle:
		return false
	}
	if tb.comp == nil || !tb.Caps.Has(Captive) {
		return false
	}
	if !tb.comp.TryActivate(tb.This) {
		return false
	}
	tb.state = Active
	return true
}

// Release ends the captive interaction of an active tool: it clears the
// tool from the active slot, releases any pointer capture and returns the
// tool to [Idle]. It returns false if the tool was not active.
func (tb *ToolBase) Release() bool {
	if tb.state != Active {
		return false
	}
	tb.ReleasePointer()
	if tb.comp != nil {
		tb.comp.releaseActive(tb.This)
	}
	tb.state = Idle
	return true
}

// Reset cancels whatever the tool is doing and returns it to [Idle],
// releasing the active slot if held, and then calls the OnReset functions.
func (tb *ToolBase) Reset() {
	if tb.state == Active {
		tb.Release()
	}
	tb.state = Idle
	for _, fun := range tb.onReset {
		fun()
	}
}

// CapturePointer makes the tool's component the pointer owner of its
// scene, so that subsequent events go straight to it even when the pointer
// leaves its bounds. Only active tools can capture; it returns false
// otherwise or when the component is not in a scene.
func (tb *ToolBase) CapturePointer() bool {
	if tb.state != Active || tb.comp == nil {
		return false
	}
	sc := tb.comp.Scene()
	if sc == nil {
		return false
	}
	sc.SetMouseOwner(tb.comp.this, tb.comp.ScenePos())
	tb.captured = sc
	return true
}

// ReleasePointer releases a pointer capture taken with [ToolBase.CapturePointer].
func (tb *ToolBase) ReleasePointer() {
	sc := tb.captured
	if sc == nil {
		return
	}
	tb.captured = nil
	if tb.comp != nil {
		sc.ReleaseMouseOwner(tb.comp.this)
	}
}

// forceActive is used by [Component.SetActiveTool] for programmatic
// activation from application code.
func (tb *ToolBase) forceActive() {
	tb.state = Active
}
