// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"image"
	"testing"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/interact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPlotScene returns a scene with a single plot child placed at (100, 50).
func newPlotScene(t *testing.T) (*interact.Scene, *interact.Component) {
	root := interact.NewContainer("root", image.Pt(400, 300))
	plot := interact.NewComponent("plot", image.Pt(0, 0))
	require.NoError(t, root.AddChild(plot, image.Rect(100, 50, 300, 250)))
	return interact.NewScene(root), plot
}

func press(x, y int) events.Event {
	return events.NewMouse(events.MouseDown, events.Left, image.Pt(x, y), 0)
}

func dragTo(x, y int) events.Event {
	return events.NewMouseDrag(events.Left, image.Pt(x, y), image.Pt(x, y), image.Pt(x, y), 0)
}

func releaseAt(x, y int) events.Event {
	return events.NewMouse(events.MouseUp, events.Left, image.Pt(x, y), 0)
}

func replay(t *testing.T, sc *interact.Scene, evs ...events.Event) {
	for _, e := range evs {
		sc.Send(e)
	}
	_, err := sc.ProcessEvents()
	require.NoError(t, err)
}

func TestDragRoundTrip(t *testing.T) {
	sc, plot := newPlotScene(t)
	d := NewDrag("pan")
	var calls []string
	d.OnStart = func(d *Drag, e events.Event) { calls = append(calls, "start "+e.Pos().String()) }
	d.OnDrag = func(d *Drag, e events.Event) { calls = append(calls, "drag "+e.Pos().String()) }
	d.OnEnd = func(d *Drag, e events.Event) { calls = append(calls, "end "+e.Pos().String()) }
	require.NoError(t, plot.AddTool(d))

	sc.Send(press(110, 60))
	_, err := sc.ProcessEvents()
	require.NoError(t, err)
	assert.Equal(t, interact.Listening, d.State())
	assert.Nil(t, plot.ActiveTool())

	sc.Send(dragTo(120, 60))
	_, err = sc.ProcessEvents()
	require.NoError(t, err)
	assert.Equal(t, interact.Active, d.State())
	assert.Equal(t, interact.Tool(d), plot.ActiveTool())
	assert.Equal(t, interact.Dispatcher(plot), sc.MouseOwner())

	// outside the plot, still delivered through the capture
	replay(t, sc, dragTo(350, 280), releaseAt(360, 290))
	assert.Equal(t, interact.Idle, d.State())
	assert.Nil(t, plot.ActiveTool())
	assert.Nil(t, sc.MouseOwner())
	assert.Equal(t, []string{
		"start (20,10)", "drag (20,10)", "drag (250,230)", "end (260,240)",
	}, calls)
	assert.Equal(t, image.Pt(10, 10), d.Start)
	assert.Equal(t, image.Pt(250, 230), d.Delta())
	assert.Equal(t, image.Rect(10, 10, 260, 240), d.Rect())
}

func TestDragThreshold(t *testing.T) {
	sc, plot := newPlotScene(t)
	d := NewDrag("pan")
	require.NoError(t, plot.AddTool(d))

	replay(t, sc, press(110, 60), dragTo(111, 61))
	assert.Equal(t, interact.Listening, d.State())

	replay(t, sc, releaseAt(111, 61))
	assert.Equal(t, interact.Idle, d.State())

	d.Threshold = 0
	replay(t, sc, press(110, 60), dragTo(110, 60))
	assert.Equal(t, interact.Active, d.State())
}

func TestDragButtonAndMods(t *testing.T) {
	sc, plot := newPlotScene(t)
	d := NewDrag("zoom")
	d.Button = events.Right
	d.Mods = key.Shift
	require.NoError(t, plot.AddTool(d))

	replay(t, sc, events.NewMouse(events.MouseDown, events.Right, image.Pt(110, 60), 0))
	assert.Equal(t, interact.Idle, d.State())
	replay(t, sc, press(110, 60))
	assert.Equal(t, interact.Idle, d.State())
	replay(t, sc, events.NewMouse(events.MouseDown, events.Right, image.Pt(110, 60), key.Shift))
	assert.Equal(t, interact.Listening, d.State())
}

func TestDragNonPreemption(t *testing.T) {
	sc, plot := newPlotScene(t)
	a := NewDrag("a")
	b := NewDrag("b")
	require.NoError(t, plot.AddTool(a))
	require.NoError(t, plot.AddTool(b))
	bDrags := 0
	b.OnDrag = func(d *Drag, e events.Event) { bDrags++ }

	replay(t, sc, press(110, 60))
	assert.Equal(t, interact.Listening, a.State())
	assert.Equal(t, interact.Listening, b.State())

	replay(t, sc, dragTo(130, 60))
	assert.Equal(t, interact.Active, a.State())
	assert.Equal(t, interact.Listening, b.State())
	assert.False(t, b.Activate())
	assert.Equal(t, interact.Tool(a), plot.ActiveTool())

	replay(t, sc, dragTo(140, 60), releaseAt(140, 60))
	assert.Equal(t, interact.Idle, a.State())
	assert.Equal(t, interact.Listening, b.State())
	assert.Nil(t, plot.ActiveTool())
	assert.Zero(t, bDrags)

	// the next press restarts b from the new position
	replay(t, sc, press(150, 100))
	assert.Equal(t, image.Pt(50, 50), b.Start)
}

func TestDragCancelKey(t *testing.T) {
	sc, plot := newPlotScene(t)
	d := NewDrag("zoom")
	canceled := 0
	d.OnCancel = func(d *Drag) { canceled++ }
	require.NoError(t, plot.AddTool(d))

	replay(t, sc, press(110, 60), dragTo(150, 90))
	require.Equal(t, interact.Active, d.State())

	other := events.NewKey("a", image.Pt(150, 90), 0)
	replay(t, sc, other)
	assert.Equal(t, interact.Active, d.State())

	esc := events.NewKey("esc", image.Pt(150, 90), 0)
	replay(t, sc, esc)
	assert.True(t, esc.IsHandled())
	assert.Equal(t, interact.Idle, d.State())
	assert.Equal(t, 1, canceled)
	assert.Nil(t, plot.ActiveTool())
	assert.Nil(t, sc.MouseOwner())
	assert.Equal(t, image.Point{}, d.Start)

	// idle tools ignore the cancel key
	replay(t, sc, events.NewKey("Escape", image.Pt(150, 90), 0))
	assert.Equal(t, 1, canceled)
}

func TestDragCancelOnLeave(t *testing.T) {
	plot := interact.NewComponent("plot", image.Pt(100, 100))
	d := NewDrag("zoom")
	d.CancelOnLeave = true
	require.NoError(t, plot.AddTool(d))

	require.NoError(t, plot.Dispatch(press(10, 10)))
	require.NoError(t, plot.Dispatch(dragTo(30, 30)))
	require.Equal(t, interact.Active, d.State())
	require.NoError(t, plot.Dispatch(events.NewMouseCrossing(events.MouseLeave, image.Pt(120, 30), 0)))
	assert.Equal(t, interact.Idle, d.State())
	assert.Nil(t, plot.ActiveTool())
}

func TestDragRemovedWhileActive(t *testing.T) {
	sc, plot := newPlotScene(t)
	d := NewDrag("pan")
	require.NoError(t, plot.AddTool(d))
	replay(t, sc, press(110, 60), dragTo(150, 90))
	require.Equal(t, interact.Active, d.State())

	_, err := plot.RemoveTool("pan")
	require.NoError(t, err)
	assert.Equal(t, interact.Idle, d.State())
	assert.Nil(t, plot.ActiveTool())
	assert.Nil(t, sc.MouseOwner())
}

func newToggleZoom() *Drag {
	d := NewDrag("zoom")
	d.AlwaysOn = false
	d.EnableKey = key.MustSpec("z")
	d.DisableKey = key.MustSpec("z")
	return d
}

func TestDragEnableKey(t *testing.T) {
	sc, plot := newPlotScene(t)
	zoom := newToggleZoom()
	canceled := 0
	zoom.OnCancel = func(d *Drag) { canceled++ }
	pan := NewDrag("pan")
	require.NoError(t, plot.AddTool(zoom))
	require.NoError(t, plot.AddTool(pan))

	replay(t, sc, press(110, 60))
	assert.Equal(t, interact.Idle, zoom.State())
	assert.Equal(t, interact.Listening, pan.State())
	replay(t, sc, releaseAt(110, 60))

	z := events.NewKey("z", image.Pt(110, 60), 0)
	replay(t, sc, z)
	assert.True(t, z.IsHandled())
	assert.True(t, zoom.Enabled())
	assert.Equal(t, interact.Active, zoom.State())
	assert.Equal(t, interact.Tool(zoom), plot.ActiveTool())

	replay(t, sc, press(110, 60), dragTo(150, 90))
	assert.True(t, zoom.Dragging())
	assert.Equal(t, interact.Dispatcher(plot), sc.MouseOwner())
	assert.Equal(t, interact.Listening, pan.State())

	replay(t, sc, releaseAt(160, 100))
	assert.True(t, zoom.Enabled())
	assert.False(t, zoom.Dragging())
	assert.Equal(t, interact.Active, zoom.State())
	assert.Nil(t, sc.MouseOwner())
	assert.Equal(t, image.Rect(10, 10, 60, 50), zoom.Rect())

	replay(t, sc, press(110, 60), dragTo(150, 90), events.NewKey("Escape", image.Pt(150, 90), 0))
	assert.Equal(t, 1, canceled)
	assert.True(t, zoom.Enabled())
	assert.False(t, zoom.Dragging())
	assert.Nil(t, sc.MouseOwner())

	replay(t, sc, events.NewKey("z", image.Pt(150, 90), 0))
	assert.False(t, zoom.Enabled())
	assert.Equal(t, interact.Idle, zoom.State())
	assert.Nil(t, plot.ActiveTool())
}

func TestDragEnableDoesNotPreempt(t *testing.T) {
	sc, plot := newPlotScene(t)
	pan := NewDrag("pan")
	zoom := newToggleZoom()
	zoom.DisableOnComplete = true
	require.NoError(t, plot.AddTool(pan))
	require.NoError(t, plot.AddTool(zoom))

	replay(t, sc, press(110, 60), dragTo(150, 90))
	require.Equal(t, interact.Active, pan.State())

	replay(t, sc, events.NewKey("z", image.Pt(150, 90), 0))
	assert.False(t, zoom.Enabled())
	assert.Equal(t, interact.Idle, zoom.State())
	assert.False(t, zoom.Enable())
	assert.Equal(t, interact.Tool(pan), plot.ActiveTool())

	replay(t, sc, releaseAt(150, 90))
	require.True(t, zoom.Enable())
	replay(t, sc, press(110, 60), dragTo(150, 90), releaseAt(150, 90))
	assert.False(t, zoom.Enabled())
	assert.Equal(t, interact.Idle, zoom.State())
	assert.Nil(t, plot.ActiveTool())
}

func TestTracker(t *testing.T) {
	sc, plot := newPlotScene(t)
	d := NewDrag("pan")
	tr := NewTracker("cursor")
	require.NoError(t, plot.AddTool(d))
	require.NoError(t, plot.AddTool(tr))
	assert.Equal(t, "cursor: -", tr.Status())

	var seen []events.Types
	tr.OnUpdate = func(t *Tracker, e events.Event) { seen = append(seen, e.Type()) }

	replay(t, sc, events.NewMouseMove(image.Pt(120, 70), image.Pt(120, 70), 0))
	assert.True(t, tr.Inside)
	assert.Equal(t, image.Pt(20, 20), tr.Last)
	assert.Equal(t, "cursor: 20, 20 (MouseMove)", tr.Status())

	// the activating drag reaches the listener pass, later ones are
	// consumed by the active drag
	replay(t, sc, press(120, 70), dragTo(140, 70), dragTo(150, 70), releaseAt(150, 70))
	assert.Equal(t, []events.Types{
		events.MouseEnter, events.MouseMove, events.MouseDown, events.MouseDrag,
	}, seen)
	assert.Equal(t, 4, tr.Count)
	assert.Equal(t, interact.Idle, d.State())

	replay(t, sc, events.NewMouseMove(image.Pt(350, 70), image.Pt(150, 70), 0))
	assert.False(t, tr.Inside)
	assert.Equal(t, events.MouseLeave, tr.LastType)
}
