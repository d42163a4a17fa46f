// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"image"
	"sync"
	"testing"

	"cogentcore.org/plotinteract/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneProcessEvents(t *testing.T) {
	root := NewContainer("root", image.Pt(100, 100))
	sc := NewScene(root)
	assert.Equal(t, sc, root.Scene())

	n := 0
	root.On(events.MouseMove, func(e events.Event) { n++ })

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 25 {
				sc.Send(events.NewMouseMove(image.Pt(g, i), image.Pt(g, i), 0))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, sc.Pending())

	count, err := sc.ProcessEvents()
	require.NoError(t, err)
	assert.Equal(t, 100, count)
	assert.Equal(t, 100, n)
	assert.Equal(t, 0, sc.Pending())
}

func TestSceneEventsQueuedByHandlers(t *testing.T) {
	root := NewContainer("root", image.Pt(100, 100))
	sc := NewScene(root)
	var got []events.Types
	root.On(events.MouseDown, func(e events.Event) {
		got = append(got, e.Type())
		sc.Send(events.NewMouse(events.MouseUp, events.Left, e.Pos(), 0))
	})
	root.On(events.MouseUp, func(e events.Event) {
		got = append(got, e.Type())
	})
	sc.Send(down(5, 5))
	count, err := sc.ProcessEvents()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []events.Types{events.MouseDown, events.MouseUp}, got)
}

func TestScenePointerCapture(t *testing.T) {
	var log []string
	root := NewContainer("root", image.Pt(300, 300))
	plot := NewComponent("plot", image.Pt(0, 0))
	require.NoError(t, root.AddChild(plot, image.Rect(60, 0, 110, 50)))
	sc := NewScene(root)

	grab := newRecorder("grab", Listener|Captive, &log)
	var positions []image.Point
	grab.On(Idle, events.MouseDown, func(e events.Event) {
		grab.Listen()
		grab.Activate()
		assert.True(t, grab.CapturePointer())
	})
	grab.On(Active, events.MouseDrag, func(e events.Event) {
		positions = append(positions, e.Pos())
		e.SetHandled()
	})
	grab.On(Active, events.MouseUp, func(e events.Event) {
		positions = append(positions, e.Pos())
		grab.Release()
		e.SetHandled()
	})
	require.NoError(t, plot.AddTool(grab))

	require.NoError(t, sc.Dispatch(down(70, 10)))
	assert.Equal(t, Active, grab.State())
	assert.Equal(t, Dispatcher(plot), sc.MouseOwner())

	drag := events.NewMouseDrag(events.Left, image.Pt(200, 200), image.Pt(70, 10), image.Pt(70, 10), 0)
	require.NoError(t, sc.Dispatch(drag))
	assert.True(t, drag.IsHandled())
	assert.Equal(t, image.Pt(200, 200), drag.Pos())

	require.NoError(t, sc.Dispatch(events.NewMouse(events.MouseUp, events.Left, image.Pt(250, 5), 0)))
	assert.Equal(t, []image.Point{image.Pt(140, 200), image.Pt(190, 5)}, positions)
	assert.Equal(t, Idle, grab.State())
	assert.Nil(t, sc.MouseOwner())
	assert.Nil(t, plot.ActiveTool())
}

func TestSceneReleaseOwnerOnlyByOwner(t *testing.T) {
	root := NewContainer("root", image.Pt(100, 100))
	a := NewComponent("a", image.Pt(0, 0))
	b := NewComponent("b", image.Pt(0, 0))
	require.NoError(t, root.AddChild(a, image.Rect(0, 0, 10, 10)))
	require.NoError(t, root.AddChild(b, image.Rect(10, 0, 20, 10)))
	sc := NewScene(root)

	sc.SetMouseOwner(a, image.Pt(0, 0))
	sc.ReleaseMouseOwner(b)
	assert.Equal(t, Dispatcher(a), sc.MouseOwner())
	sc.ReleaseMouseOwner(a)
	assert.Nil(t, sc.MouseOwner())
}

func TestCaptureRequiresActiveAndScene(t *testing.T) {
	var log []string
	c := NewComponent("plot", image.Pt(10, 10))
	a := newRecorder("a", Captive, &log)
	require.NoError(t, c.AddTool(a))
	assert.False(t, a.CapturePointer())
	require.NoError(t, c.SetActiveTool(a))
	assert.False(t, a.CapturePointer())
}

func TestRemoveChildReleasesCapture(t *testing.T) {
	var log []string
	root := NewContainer("root", image.Pt(300, 300))
	grid := NewContainer("grid", image.Pt(0, 0))
	plot := NewComponent("plot", image.Pt(0, 0))
	require.NoError(t, root.AddChild(grid, image.Rect(100, 100, 300, 300)))
	require.NoError(t, grid.AddChild(plot, image.Rect(20, 30, 120, 130)))
	sc := NewScene(root)
	assert.Equal(t, image.Pt(120, 130), plot.ScenePos())

	grab := newRecorder("grab", Listener|Captive, &log)
	require.NoError(t, plot.AddTool(grab))
	grab.Listen()
	require.True(t, grab.Activate())
	require.True(t, grab.CapturePointer())
	assert.Equal(t, Dispatcher(plot), sc.MouseOwner())

	rootSaw := 0
	root.On(events.MouseDown, func(e events.Event) { rootSaw++ })

	_, err := root.RemoveChild("grid")
	require.NoError(t, err)
	assert.Nil(t, sc.MouseOwner())
	assert.Equal(t, Idle, grab.State())
	assert.Nil(t, plot.ActiveTool())

	log = nil
	require.NoError(t, sc.Dispatch(down(10, 10)))
	assert.Equal(t, 1, rootSaw)
	assert.Empty(t, log)
}

func TestReleasePointerAfterDetach(t *testing.T) {
	var log []string
	root := NewContainer("root", image.Pt(300, 300))
	plot := NewComponent("plot", image.Pt(0, 0))
	require.NoError(t, root.AddChild(plot, image.Rect(60, 0, 110, 50)))
	sc := NewScene(root)

	grab := newRecorder("grab", Listener|Captive, &log)
	require.NoError(t, plot.AddTool(grab))
	require.NoError(t, plot.SetActiveTool(grab))
	require.True(t, grab.CapturePointer())

	plot.parent = nil
	assert.Nil(t, plot.Scene())
	assert.True(t, grab.Release())
	assert.Nil(t, sc.MouseOwner())
}
