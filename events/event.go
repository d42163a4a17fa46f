// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered to plot components
// and their tools, along with the handled flag that short-circuits
// their propagation.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/plotinteract/events/key"
)

// Event is the interface for all input events.
// Positions are always expressed in the coordinate space of the
// component currently receiving the event: containers call [Event.Offset]
// before handing an event to a child and undo it afterwards.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// IsHandled returns whether this event has already been handled.
	IsHandled() bool

	// SetHandled marks the event as having been handled,
	// which stops further short-circuitable propagation.
	SetHandled()

	// ClearHandled resets the handled flag. It is only used by the
	// event source when an event object is recycled.
	ClearHandled()

	// Pos returns the position of the event in the local coordinates
	// of the receiving component.
	Pos() image.Point

	// PrevPos returns the previous position of the pointer, for
	// move and drag events, in local coordinates.
	PrevPos() image.Point

	// StartPos returns the position where the current button was first
	// pressed, for drag events, in local coordinates.
	StartPos() image.Point

	// StartDelta returns Pos minus StartPos.
	StartDelta() image.Point

	// WindowPos returns the position in the top-level coordinate space,
	// which does not change as the event is offset into children.
	WindowPos() image.Point

	// NetOffset returns the accumulated offset applied to the event,
	// so that WindowPos = Pos + NetOffset.
	NetOffset() image.Point

	// Offset moves the event into a coordinate space whose origin is at d
	// relative to the current space. Offset(d.Mul(-1)) undoes it.
	Offset(d image.Point)

	// MouseButton returns the button associated with the event, if any.
	MouseButton() Buttons

	// Modifiers returns the modifier keys held during the event.
	Modifiers() key.Modifiers

	// HasAnyModifier returns whether any of the given modifiers were held.
	HasAnyModifier(mods ...key.Modifiers) bool

	// KeyName returns the key name for KeyChord events, and "" otherwise.
	KeyName() string

	// Time returns the time at which the event was generated.
	Time() time.Time
}
