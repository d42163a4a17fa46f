// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of input event a plot component receives.
// The type includes both the source of the event and the "action"
// (e.g., MouseDown and MouseUp are separate event types), so that tools
// and components can register handlers for exactly the kinds they care about.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button() for which.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there is a button down.
	// The start pos indicates where the button was first pressed.
	MouseDrag

	// Scroll is for scroll wheel events. See [MouseScroll] for the delta.
	Scroll

	// MouseEnter is when the mouse enters the bounding box of a child
	// component. It is synthesized by containers.
	MouseEnter

	// MouseLeave is when the mouse leaves the bounding box of a child
	// component that previously had a MouseEnter event.
	MouseLeave

	// KeyChord is a key press, carrying the position of the pointer at the
	// time of the press. Tools only use it to cancel or toggle interactions.
	KeyChord

	typesN
)

var typesNames = [...]string{
	UnknownType: "UnknownType",
	MouseDown:   "MouseDown",
	MouseUp:     "MouseUp",
	MouseMove:   "MouseMove",
	MouseDrag:   "MouseDrag",
	Scroll:      "Scroll",
	MouseEnter:  "MouseEnter",
	MouseLeave:  "MouseLeave",
	KeyChord:    "KeyChord",
}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typesNames[tp]
}

// TypesValues returns all of the defined event types.
func TypesValues() []Types {
	vals := make([]Types, 0, typesN)
	for tp := UnknownType; tp < typesN; tp++ {
		vals = append(vals, tp)
	}
	return vals
}

// ParseType returns the event type with the given name, which may
// also be one of the short script names (down, up, move, drag, scroll,
// enter, leave, key).
func ParseType(name string) (Types, bool) {
	switch name {
	case "down":
		return MouseDown, true
	case "up":
		return MouseUp, true
	case "move":
		return MouseMove, true
	case "drag":
		return MouseDrag, true
	case "scroll":
		return Scroll, true
	case "enter":
		return MouseEnter, true
	case "leave":
		return MouseLeave, true
	case "key":
		return KeyChord, true
	}
	for tp, nm := range typesNames {
		if nm == name {
			return Types(tp), true
		}
	}
	return UnknownType, false
}

// IsMouse returns whether the type is a pointer event type
// (everything except KeyChord and UnknownType).
func (tp Types) IsMouse() bool {
	return tp >= MouseDown && tp <= MouseLeave
}

// EventFlags encode boolean event properties
type EventFlags int64

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = 1 << iota
)

// Has returns whether all of the given flags are set.
func (fl EventFlags) Has(f EventFlags) bool {
	return fl&f == f
}
