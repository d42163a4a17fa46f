// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"image"
	"log/slog"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/events"
)

// Scene is the top of a component hierarchy. It owns the event queue
// fed by the windowing system, which may send from any goroutine, and
// delivers queued events to the root one at a time on the goroutine
// calling [Scene.ProcessEvents]. Events are in scene coordinates.
type Scene struct {

	// Root is the root dispatcher, usually a [Container].
	Root Dispatcher

	queue events.Queue

	// owner is the component holding the pointer capture, if any.
	owner Dispatcher

	// ownerOffset is the position of the owner's origin in the scene.
	ownerOffset image.Point
}

// NewScene returns a new scene for the given root, which must not be
// a child of a container.
func NewScene(root Dispatcher) *Scene {
	sc := &Scene{Root: root}
	root.AsComponent().scene = sc
	return sc
}

// Send queues the event for delivery. It is safe to call from any goroutine.
func (sc *Scene) Send(e events.Event) {
	sc.queue.Send(e)
}

// Pending returns the number of queued events.
func (sc *Scene) Pending() int {
	return int(sc.queue.Len())
}

// ProcessEvents dispatches all queued events in order, including events
// queued by handlers while processing, and returns the number of events
// dispatched and the joined handler failures.
func (sc *Scene) ProcessEvents() (int, error) {
	var errs []error
	n := sc.queue.Drain(func(e events.Event) {
		if err := sc.Dispatch(e); err != nil {
			errs = append(errs, err)
		}
	})
	return n, errors.Join(errs...)
}

// Dispatch delivers a single event synchronously. While a component holds
// the pointer capture, events go straight to it in its own coordinates,
// bypassing the containers above it.
func (sc *Scene) Dispatch(e events.Event) error {
	if sc.owner != nil {
		off := sc.ownerOffset
		e.Offset(off)
		defer e.Offset(off.Mul(-1))
		return sc.owner.Dispatch(e)
	}
	if sc.Root == nil {
		return nil
	}
	return sc.Root.Dispatch(e)
}

// SetMouseOwner gives the pointer capture to the given component, whose
// origin is at the given offset in scene coordinates.
func (sc *Scene) SetMouseOwner(d Dispatcher, offset image.Point) {
	sc.owner = d
	sc.ownerOffset = offset
	slog.Debug("pointer captured", "component", d.AsComponent().Path(), "offset", offset)
}

// MouseOwner returns the component holding the pointer capture, or nil.
func (sc *Scene) MouseOwner() Dispatcher {
	return sc.owner
}

// ReleaseMouseOwner releases the pointer capture if it is held by the
// given component.
func (sc *Scene) ReleaseMouseOwner(d Dispatcher) {
	if sc.owner != d {
		return
	}
	sc.owner = nil
	sc.ownerOffset = image.Point{}
	slog.Debug("pointer released", "component", d.AsComponent().Path())
}
