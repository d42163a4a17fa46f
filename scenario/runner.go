// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/interact"
)

// Result is the outcome of replaying one [Step].
type Result struct {
	Step *Step

	// Event is the event sent for the step.
	Event events.Event

	// Deliveries are the handler invocations the event caused.
	Deliveries []interact.Delivery

	// Err joins the handler failures.
	Err error
}

// Runner replays script steps against a built scene, keeping track of
// the pointer the way a windowing system does: the last position, and
// the button held and where it was pressed, for drag events.
type Runner struct {
	Built *Built

	pos    image.Point
	start  image.Point
	button events.Buttons
	trace  []interact.Delivery
}

// NewRunner returns a runner for the built scene, observing every
// delivery made in it.
func NewRunner(b *Built) *Runner {
	r := &Runner{Built: b}
	b.Root.Observe = func(d interact.Delivery) {
		r.trace = append(r.trace, d)
	}
	return r
}

// Event returns the event for the step, updating the pointer state.
func (r *Runner) Event(st *Step) (events.Event, error) {
	pos := r.pos
	if st.HasPos {
		pos = st.Pos
	}
	mods, err := parseMods(st.NameValue["mods"])
	if err != nil {
		return nil, err
	}
	button := r.button
	if bs, ok := st.NameValue["button"]; ok {
		b, ok := events.ParseButton(bs)
		if !ok {
			return nil, fmt.Errorf("unknown button %q", bs)
		}
		button = b
	}

	var e events.Event
	switch st.Type {
	case events.MouseDown:
		if button == events.NoButton {
			button = events.Left
		}
		e = events.NewMouse(events.MouseDown, button, pos, mods)
		r.button = button
		r.start = pos
	case events.MouseUp:
		e = events.NewMouse(events.MouseUp, button, pos, mods)
		r.button = events.NoButton
	case events.MouseMove:
		e = events.NewMouseMove(pos, r.pos, mods)
	case events.MouseDrag:
		if button == events.NoButton {
			button = events.Left
		}
		e = events.NewMouseDrag(button, pos, r.pos, r.start, mods)
	case events.Scroll:
		dx, err := intArg(st, "dx")
		if err != nil {
			return nil, err
		}
		dy, err := intArg(st, "dy")
		if err != nil {
			return nil, err
		}
		e = events.NewScroll(pos, image.Pt(dx, dy), mods)
	case events.MouseEnter, events.MouseLeave:
		e = events.NewMouseCrossing(st.Type, pos, mods)
	case events.KeyChord:
		name := st.NameValue["name"]
		if name == "" && len(st.Args) == 1 {
			name = st.Args[0]
		}
		if name == "" {
			return nil, fmt.Errorf("key step needs one key name, got %q", st.Args)
		}
		sp, err := key.NewSpec(name)
		if err != nil {
			return nil, err
		}
		e = events.NewKey(sp.Name, pos, mods|sp.Mods)
	default:
		return nil, fmt.Errorf("%w %v", ErrUnknownEvent, st.Type)
	}
	r.pos = pos
	return e, nil
}

func intArg(st *Step, name string) (int, error) {
	s, ok := st.NameValue[name]
	if !ok {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, s, err)
	}
	return v, nil
}

// Step sends the event for the step through the scene queue, processes
// it and returns the deliveries it caused.
func (r *Runner) Step(st *Step) (*Result, error) {
	e, err := r.Event(st)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", st.Line, err)
	}
	r.trace = nil
	r.Built.Scene.Send(e)
	_, derr := r.Built.Scene.ProcessEvents()
	res := &Result{Step: st, Event: e, Deliveries: r.trace, Err: derr}
	r.trace = nil
	slog.Debug("replayed step", "line", st.Line, "step", st.String(), "deliveries", len(res.Deliveries))
	return res, nil
}

// Run replays all of the steps. Handler failures do not stop the run;
// they are recorded in the results and joined into the returned error.
// A malformed step stops the run.
func (r *Runner) Run(steps []*Step) ([]*Result, error) {
	var res []*Result
	var errs []error
	for _, st := range steps {
		sr, err := r.Step(st)
		if err != nil {
			return res, err
		}
		res = append(res, sr)
		if sr.Err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", st.Line, sr.Err))
		}
	}
	return res, errors.Join(errs...)
}
