// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/plotinteract/events/key"
)

// Base is the base type for events.
// It is designed to be embedded and implements the [Event] interface.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// Flags records event-level properties such as [Handled].
	Flags EventFlags

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Where is the event location in the local coordinates of the
	// receiving component.
	Where image.Point

	// Prev is the previous pointer location, for move and drag events.
	Prev image.Point

	// Start is where the button was first pressed, for drag events.
	Start image.Point

	// Button is the mouse button associated with the event.
	Button Buttons

	// Mods are the modifier keys held during the event.
	Mods key.Modifiers

	// net is the accumulated offset, see [Base.Offset].
	net image.Point
}

// Init initializes the base event with the given type and the current time.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) IsHandled() bool {
	return ev.Flags.Has(Handled)
}

func (ev *Base) SetHandled() {
	ev.Flags |= Handled
}

func (ev *Base) ClearHandled() {
	ev.Flags &^= Handled
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) PrevPos() image.Point {
	return ev.Prev
}

func (ev *Base) StartPos() image.Point {
	return ev.Start
}

func (ev *Base) StartDelta() image.Point {
	return ev.Where.Sub(ev.Start)
}

func (ev *Base) WindowPos() image.Point {
	return ev.Where.Add(ev.net)
}

func (ev *Base) NetOffset() image.Point {
	return ev.net
}

func (ev *Base) Offset(d image.Point) {
	ev.Where = ev.Where.Sub(d)
	ev.Prev = ev.Prev.Sub(d)
	ev.Start = ev.Start.Sub(d)
	ev.net = ev.net.Add(d)
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) HasAnyModifier(mods ...key.Modifiers) bool {
	return key.HasAnyModifier(ev.Mods, mods...)
}

func (ev *Base) KeyName() string {
	return ""
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Typ, ev.Where, ev.GenTime.Format("04:05"))
}
