// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"cogentcore.org/plotinteract/events/key"
	"github.com/stretchr/testify/assert"
)

func TestHandledFlag(t *testing.T) {
	ev := NewMouse(MouseDown, Left, image.Pt(3, 4), 0)
	assert.False(t, ev.IsHandled())
	ev.SetHandled()
	assert.True(t, ev.IsHandled())
	ev.ClearHandled()
	assert.False(t, ev.IsHandled())
}

func TestOffset(t *testing.T) {
	ev := NewMouseDrag(Left, image.Pt(50, 60), image.Pt(45, 58), image.Pt(40, 40), key.Shift)
	ev.Offset(image.Pt(30, 20))
	assert.Equal(t, image.Pt(20, 40), ev.Pos())
	assert.Equal(t, image.Pt(15, 38), ev.PrevPos())
	assert.Equal(t, image.Pt(10, 20), ev.StartPos())
	assert.Equal(t, image.Pt(10, 20), ev.StartDelta())
	assert.Equal(t, image.Pt(50, 60), ev.WindowPos())
	assert.Equal(t, image.Pt(30, 20), ev.NetOffset())

	ev.Offset(image.Pt(5, 5))
	assert.Equal(t, image.Pt(15, 35), ev.Pos())
	assert.Equal(t, image.Pt(50, 60), ev.WindowPos())

	ev.Offset(image.Pt(-35, -25))
	assert.Equal(t, image.Pt(50, 60), ev.Pos())
	assert.Equal(t, image.Point{}, ev.NetOffset())
	assert.True(t, ev.HasAnyModifier(key.Shift))
}

func TestTypes(t *testing.T) {
	assert.Equal(t, "MouseDrag", MouseDrag.String())
	assert.Equal(t, "Types(99)", Types(99).String())
	for _, tp := range TypesValues() {
		got, ok := ParseType(tp.String())
		assert.True(t, ok)
		assert.Equal(t, tp, got)
	}
	tp, ok := ParseType("drag")
	assert.True(t, ok)
	assert.Equal(t, MouseDrag, tp)
	_, ok = ParseType("wiggle")
	assert.False(t, ok)
	assert.True(t, MouseLeave.IsMouse())
	assert.False(t, KeyChord.IsMouse())
}

func TestKeyEvent(t *testing.T) {
	ev := NewKey("esc", image.Pt(1, 1), 0)
	assert.Equal(t, "Escape", ev.KeyName())
	assert.True(t, ev.Matches(key.MustSpec("Escape")))
	assert.True(t, MatchesKey(ev, key.MustSpec("Escape")))
	assert.False(t, MatchesKey(NewMouse(MouseDown, Left, image.Point{}, 0), key.MustSpec("Escape")))
	assert.Equal(t, "", NewMouse(MouseUp, Left, image.Point{}, 0).KeyName())
}

func TestListenersCall(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(MouseDown, func(ev Event) { calls = append(calls, "first") })
	ls.Add(MouseDown, func(ev Event) { calls = append(calls, "second") })
	ls.Add(MouseDown, func(ev Event) { calls = append(calls, "third") })
	ls.Add(MouseUp, func(ev Event) { calls = append(calls, "up") })

	ls.Call(NewMouse(MouseDown, Left, image.Point{}, 0))
	assert.Equal(t, []string{"third", "second", "first"}, calls)

	calls = nil
	ls.Add(MouseDown, func(ev Event) {
		calls = append(calls, "handler")
		ev.SetHandled()
	})
	ls.Call(NewMouse(MouseDown, Left, image.Point{}, 0))
	assert.Equal(t, []string{"handler"}, calls)

	calls = nil
	handled := NewMouse(MouseUp, Left, image.Point{}, 0)
	handled.SetHandled()
	ls.Call(handled)
	assert.Empty(t, calls)
}

func TestQueue(t *testing.T) {
	var q Queue
	assert.Nil(t, q.NextEvent())

	const senders, per = 4, 100
	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				q.Send(NewMouseMove(image.Pt(i, s), image.Pt(i, s), 0))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(senders*per), q.Len())

	last := map[int]int{}
	n := q.Drain(func(ev Event) {
		p := ev.Pos()
		if prev, ok := last[p.Y]; ok {
			assert.Greater(t, p.X, prev, "per-sender FIFO order")
		}
		last[p.Y] = p.X
	})
	assert.Equal(t, senders*per, n)
	assert.Equal(t, uint64(0), q.Len())
}
