// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"image"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/interact"
	"github.com/chewxy/math32"
)

// DefaultThreshold is the default distance in pixels the pointer must
// move with the button held before a [Drag] activates.
const DefaultThreshold float32 = 3

// Drag is a captive tool that tracks a press, drag and release of a mouse
// button. It is the template for tools such as pan and zoom-box: a press
// makes it listen, a drag beyond the threshold activates it and captures
// the pointer, and the release ends the interaction.
//
// When AlwaysOn is false, presses are ignored until the tool is enabled
// with EnableKey or [Drag.Enable]. Enabling claims the active slot of the
// component before any drag, so the tool then sees events first; it fails
// if another tool is active. The tool stays enabled across drags unless
// DisableOnComplete is set, and DisableKey or [Drag.Disable] turn it off.
type Drag struct {
	interact.ToolBase

	// Button is the mouse button that starts the drag.
	Button events.Buttons

	// Mods are the modifiers that must be held when pressing the button.
	Mods key.Modifiers

	// Threshold is the distance the pointer must move from the press
	// position before the drag activates.
	Threshold float32

	// CancelKey cancels the drag when pressed.
	CancelKey key.Spec

	// CancelOnLeave cancels an active drag when the pointer leaves the
	// component. It only applies when the pointer is not captured.
	CancelOnLeave bool

	// AlwaysOn is whether any matching press starts a drag. If false, the
	// tool must be enabled first.
	AlwaysOn bool

	// EnableKey enables the tool when AlwaysOn is false.
	EnableKey key.Spec

	// DisableKey disables an enabled tool that is not dragging.
	DisableKey key.Spec

	// DisableOnComplete disables the tool when a drag ends or is canceled.
	DisableOnComplete bool

	// OnStart is called when the drag activates, before the first OnDrag.
	OnStart func(d *Drag, e events.Event)

	// OnDrag is called for every drag event while active.
	OnDrag func(d *Drag, e events.Event)

	// OnEnd is called when the button is released while active.
	OnEnd func(d *Drag, e events.Event)

	// OnCancel is called when a pending or active drag is canceled.
	OnCancel func(d *Drag)

	// Start is the press position, in component coordinates.
	Start image.Point

	// Current is the latest drag position, in component coordinates.
	Current image.Point

	phase dragPhase

	enabled bool
}

// dragPhase is the progress of a drag gesture.
type dragPhase int32

const (
	notPressed dragPhase = iota
	pressed
	dragging
)

// NewDrag returns a new always on left button drag tool with the default
// threshold and the Escape cancel key.
func NewDrag(name string) *Drag {
	d := &Drag{}
	d.Button = events.Left
	d.Threshold = DefaultThreshold
	d.CancelKey = key.Spec{Name: "Escape"}
	d.AlwaysOn = true
	d.Init(name)
	return d
}

// Init initializes the tool base and registers the state handlers.
// It is called by [NewDrag] and must be called for a Drag made otherwise.
func (d *Drag) Init(name string) {
	d.InitTool(d, name, interact.Listener|interact.Captive)
	d.On(interact.Idle, events.MouseDown, d.press)
	d.On(interact.Listening, events.MouseDown, d.press)
	d.On(interact.Listening, events.MouseDrag, d.dragListening)
	d.On(interact.Listening, events.MouseUp, d.abandon)
	d.On(interact.Listening, events.MouseMove, d.abandon)
	d.On(interact.Active, events.MouseDown, d.press)
	d.On(interact.Active, events.MouseDrag, d.dragActive)
	d.On(interact.Active, events.MouseUp, d.release)
	d.On(interact.Active, events.MouseLeave, func(e events.Event) {
		if d.CancelOnLeave && d.phase == dragging {
			d.Cancel()
			e.SetHandled()
		}
	})
	d.On(interact.AnyState, events.KeyChord, d.keyChord)
	d.OnReset(func() {
		d.Start = image.Point{}
		d.Current = image.Point{}
		d.phase = notPressed
		d.enabled = false
	})
}

// Delta returns the displacement of the drag so far.
func (d *Drag) Delta() image.Point {
	return d.Current.Sub(d.Start)
}

// Rect returns the rectangle spanned by the drag, as used by a zoom box.
func (d *Drag) Rect() image.Rectangle {
	return image.Rectangle{Min: d.Start, Max: d.Current}.Canon()
}

// Enabled returns whether the tool has been enabled and holds the
// active slot while waiting for a press.
func (d *Drag) Enabled() bool {
	return d.enabled
}

// Dragging returns whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.phase == dragging
}

// Enable claims the active slot of the component so that the next
// matching press starts a drag. It returns false if another tool is
// active or the tool is not attached.
func (d *Drag) Enable() bool {
	if d.enabled {
		return true
	}
	if d.State() == interact.Active {
		return false
	}
	d.Listen()
	if !d.Activate() {
		d.Reset()
		return false
	}
	d.enabled = true
	return true
}

// Disable ends any drag in progress and gives up the active slot.
func (d *Drag) Disable() {
	if !d.enabled {
		return
	}
	d.Reset()
}

// Cancel abandons a pending or active drag, calling OnCancel. An enabled
// tool stays enabled unless DisableOnComplete is set; canceling an enabled
// tool with no press pending disables it.
func (d *Drag) Cancel() {
	if d.State() == interact.Idle {
		return
	}
	if d.OnCancel != nil {
		d.OnCancel(d)
	}
	if d.keepEnabled() {
		d.ReleasePointer()
		d.Start = image.Point{}
		d.Current = image.Point{}
		d.phase = notPressed
		return
	}
	d.Reset()
}

// keepEnabled returns whether the end of the current gesture leaves the
// tool enabled.
func (d *Drag) keepEnabled() bool {
	return d.enabled && !d.DisableOnComplete && d.phase != notPressed
}

func (d *Drag) matches(e events.Event) bool {
	return e.MouseButton() == d.Button && e.Modifiers() == d.Mods
}

// beyond returns whether p is at least the threshold distance from Start.
func (d *Drag) beyond(p image.Point) bool {
	dp := p.Sub(d.Start)
	dist := math32.Sqrt(float32(dp.X*dp.X + dp.Y*dp.Y))
	return dist >= d.Threshold
}

func (d *Drag) press(e events.Event) {
	if !d.matches(e) || d.phase == dragging {
		return
	}
	if !d.AlwaysOn && !d.enabled {
		return
	}
	if d.State() != interact.Active {
		d.Listen()
	}
	d.phase = pressed
	d.Start = e.Pos()
	d.Current = e.Pos()
}

func (d *Drag) abandon(e events.Event) {
	d.Reset()
}

func (d *Drag) dragListening(e events.Event) {
	if e.MouseButton() != d.Button || !d.beyond(e.Pos()) {
		return
	}
	if !d.Activate() {
		return
	}
	d.begin(e)
}

// begin starts the drag of an active tool.
func (d *Drag) begin(e events.Event) {
	d.CapturePointer()
	d.phase = dragging
	d.Current = e.Pos()
	if d.OnStart != nil {
		d.OnStart(d, e)
	}
	if d.OnDrag != nil {
		d.OnDrag(d, e)
	}
	e.SetHandled()
}

func (d *Drag) dragActive(e events.Event) {
	switch d.phase {
	case pressed:
		if e.MouseButton() == d.Button && d.beyond(e.Pos()) {
			d.begin(e)
		}
		return
	case notPressed:
		return
	}
	d.Current = e.Pos()
	if d.OnDrag != nil {
		d.OnDrag(d, e)
	}
	e.SetHandled()
}

func (d *Drag) release(e events.Event) {
	switch d.phase {
	case pressed:
		d.phase = notPressed
		return
	case notPressed:
		return
	}
	d.Current = e.Pos()
	if d.OnEnd != nil {
		d.OnEnd(d, e)
	}
	if d.keepEnabled() {
		d.ReleasePointer()
		d.phase = notPressed
	} else {
		d.Release()
		d.phase = notPressed
		d.enabled = false
	}
	e.SetHandled()
}

func (d *Drag) keyChord(e events.Event) {
	matches := func(sp key.Spec) bool {
		return !sp.IsZero() && events.MatchesKey(e, sp)
	}
	switch {
	case d.enabled && d.phase == notPressed:
		switch {
		case matches(d.DisableKey):
			d.Disable()
			e.SetHandled()
		case matches(d.CancelKey):
			d.Cancel()
			e.SetHandled()
		}
	case d.State() != interact.Idle:
		if matches(d.CancelKey) {
			d.Cancel()
			e.SetHandled()
		}
	case !d.AlwaysOn && matches(d.EnableKey):
		if d.Enable() {
			e.SetHandled()
		}
	}
}
