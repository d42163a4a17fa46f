// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSpecRoundTrip(t *testing.T, chord, want string) {
	t.Helper()
	sp, err := NewSpec(chord)
	require.NoError(t, err, chord)
	assert.Equal(t, want, sp.String())
	nsp, err := NewSpec(sp.String())
	require.NoError(t, err, sp.String())
	assert.Equal(t, sp, nsp)
}

func TestSpecNormalize(t *testing.T) {
	runSpecRoundTrip(t, "a", "a")
	runSpecRoundTrip(t, "Z", "z")
	runSpecRoundTrip(t, "esc", "Escape")
	runSpecRoundTrip(t, "ctrl+Z", "Control+z")
	runSpecRoundTrip(t, "Shift+ctrl+Return", "Shift+Control+Enter")
	runSpecRoundTrip(t, "cmd+Backspace", "Meta+Backspace")
}

func TestSpecErrors(t *testing.T) {
	for _, chord := range []string{"", "  ", "ctrl+", "hyper+a", "+a"} {
		_, err := NewSpec(chord)
		assert.Error(t, err, "chord %q", chord)
	}
	assert.Panics(t, func() { MustSpec("bogus+x") })
}

func TestSpecMatch(t *testing.T) {
	esc := MustSpec("Escape")
	assert.True(t, esc.Match("esc", 0))
	assert.True(t, esc.Match("Escape", 0))
	assert.False(t, esc.Match("Escape", Shift))
	assert.False(t, esc.Match("Enter", 0))

	undo := MustSpec("Control+z")
	assert.True(t, undo.Match("Z", Control))
	assert.False(t, undo.Match("z", Control|Shift))
	assert.False(t, undo.Match("z", 0))

	var zero Spec
	assert.True(t, zero.IsZero())
	assert.False(t, zero.Match("", 0))
}

func TestSpecText(t *testing.T) {
	var sp Spec
	require.NoError(t, sp.UnmarshalText([]byte("alt+x")))
	assert.Equal(t, MustSpec("Alt+x"), sp)
	b, err := sp.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Alt+x", string(b))
	assert.Error(t, sp.UnmarshalText([]byte("nope+x")))
}

func TestModifiers(t *testing.T) {
	mods := Shift | Meta
	assert.True(t, HasAnyModifier(mods, Control, Meta))
	assert.False(t, HasAnyModifier(mods, Control, Alt))
	assert.True(t, HasAllModifiers(mods, Shift, Meta))
	assert.False(t, HasAllModifiers(mods, Shift, Alt))
	assert.Equal(t, "Shift+Meta", mods.String())
	assert.Equal(t, "", Modifiers(0).String())
}
