// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"slices"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/interact"
)

// Recorder is a scripted tool that records the event types it receives
// and marks the configured types handled.
type Recorder struct {
	interact.ToolBase

	// Handle are the event types marked handled.
	Handle []events.Types

	// Seen are the types of the events received, in order.
	Seen []events.Types
}

// NewRecorder returns a new recorder with the given capabilities.
func NewRecorder(name string, caps interact.Capabilities, handle ...events.Types) *Recorder {
	r := &Recorder{Handle: handle}
	r.InitTool(r, name, caps)
	return r
}

func (r *Recorder) HandleEvent(e events.Event) {
	r.Seen = append(r.Seen, e.Type())
	if slices.Contains(r.Handle, e.Type()) {
		e.SetHandled()
	}
}

// handler returns a function marking the given event types handled.
func handler(handle []events.Types) func(e events.Event) {
	return func(e events.Event) {
		if slices.Contains(handle, e.Type()) {
			e.SetHandled()
		}
	}
}

// parseTypes parses event type names such as "down" or "MouseDown".
func parseTypes(names []string) ([]events.Types, error) {
	var res []events.Types
	for _, nm := range names {
		tp, ok := events.ParseType(nm)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownEvent, nm)
		}
		res = append(res, tp)
	}
	return res, nil
}
