// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/plotinteract/events/key"
)

// Key is a KeyChord event. It records the pointer position at the time
// of the key press so that containers can route it spatially like any
// other event.
type Key struct {
	Base

	// Name is the normalized name of the key, see [key.NormalizeName].
	Name string
}

func NewKey(name string, where image.Point, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Init(KeyChord)
	ev.Name = key.NormalizeName(name)
	ev.Where = where
	ev.Prev = where
	ev.Start = where
	ev.Mods = mods
	return ev
}

func (ev *Key) KeyName() string {
	return ev.Name
}

// Matches returns whether the key event matches the given spec.
func (ev *Key) Matches(sp key.Spec) bool {
	return sp.Match(ev.Name, ev.Mods)
}

func (ev *Key) String() string {
	chord := ev.Name
	if ev.Mods != 0 {
		chord = ev.Mods.ModifiersString() + "+" + chord
	}
	return fmt.Sprintf("%v{Chord: %v, Pos: %v, Time: %v}", ev.Type(), chord, ev.Where, ev.Time().Format("04:05"))
}

// MatchesKey returns whether the event is a KeyChord matching the
// given spec. It is a convenience for tools handling generic events.
func MatchesKey(e Event, sp key.Spec) bool {
	if e.Type() != KeyChord {
		return false
	}
	return sp.Match(e.KeyName(), e.Modifiers())
}
