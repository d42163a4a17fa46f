// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"fmt"
	"image"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/interact"
)

// Tracker is a pure listener that follows the pointer over its component,
// as used for cursor readouts and crosshairs. It never handles events.
// It sees every event that reaches the listener pass, which excludes
// events consumed by an active tool.
type Tracker struct {
	interact.ToolBase

	// Last is the last pointer position, in component coordinates.
	Last image.Point

	// LastType is the type of the last event.
	LastType events.Types

	// Count is the number of events seen.
	Count int

	// Inside is whether the pointer is over the component, based on
	// the enter and leave events.
	Inside bool

	// OnUpdate is called after every event with the updated tracker.
	OnUpdate func(t *Tracker, e events.Event)
}

// NewTracker returns a new tracker.
func NewTracker(name string) *Tracker {
	t := &Tracker{}
	t.InitTool(t, name, interact.Listener)
	return t
}

func (t *Tracker) HandleEvent(e events.Event) {
	t.Count++
	t.LastType = e.Type()
	t.Last = e.Pos()
	switch e.Type() {
	case events.MouseEnter:
		t.Inside = true
	case events.MouseLeave:
		t.Inside = false
	}
	if t.OnUpdate != nil {
		t.OnUpdate(t, e)
	}
}

// Status returns a readout of the last position and event type.
func (t *Tracker) Status() string {
	if t.Count == 0 {
		return t.Name + ": -"
	}
	return fmt.Sprintf("%s: %d, %d (%v)", t.Name, t.Last.X, t.Last.Y, t.LastType)
}
