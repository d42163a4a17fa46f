// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/plotinteract/events/key"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonNames = [...]string{NoButton: "NoButton", Left: "Left", Middle: "Middle", Right: "Right"}

func (bt Buttons) String() string {
	if bt < 0 || int(bt) >= len(buttonNames) {
		return fmt.Sprintf("Buttons(%d)", int32(bt))
	}
	return buttonNames[bt]
}

// ParseButton returns the button with the given (case sensitive
// lowercase or title case) name.
func ParseButton(name string) (Buttons, bool) {
	switch name {
	case "", "none", "NoButton":
		return NoButton, true
	case "left", "Left":
		return Left, true
	case "middle", "Middle":
		return Middle, true
	case "right", "Right":
		return Right, true
	}
	return NoButton, false
}

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base
}

func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init(typ)
	ev.Button = but
	ev.Where = where
	ev.Prev = where
	ev.Start = where
	ev.Mods = mods
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

func NewMouseMove(where, prev image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init(MouseMove)
	ev.Where = where
	ev.Prev = prev
	ev.Start = where
	ev.Mods = mods
	return ev
}

func NewMouseDrag(but Buttons, where, prev, start image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init(MouseDrag)
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Start = start
	ev.Mods = mods
	return ev
}

// NewMouseCrossing returns a MouseEnter or MouseLeave event at the given
// position. Containers synthesize these as the pointer crosses child bounds.
func NewMouseCrossing(typ Types, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init(typ)
	ev.Where = where
	ev.Prev = where
	ev.Start = where
	ev.Mods = mods
	return ev
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in wheel steps.
	// Positive Y scrolls "up" (away from the user).
	Delta image.Point
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

func NewScroll(where image.Point, delta image.Point, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Init(Scroll)
	ev.Where = where
	ev.Prev = where
	ev.Start = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}
