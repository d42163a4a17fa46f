// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key contains the modifier flags and key specifications
// used by tools to recognize key chords.
package key

import "strings"

// Modifiers are used as bit flags representing a set of modifier keys.
type Modifiers int32

const (
	// Shift is the "Shift" key
	Shift Modifiers = 1 << iota

	// Control is the "Control" key
	Control

	// Alt is the "Alt" ("Option" on macOS) key
	Alt

	// Meta is the system meta key ("Command" on macOS, "Windows" on Windows)
	Meta
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Meta, "Meta"},
}

// HasAnyModifier returns whether any of the given modifiers are set in mods.
func HasAnyModifier(mods Modifiers, check ...Modifiers) bool {
	for _, c := range check {
		if mods&c != 0 {
			return true
		}
	}
	return false
}

// HasAllModifiers returns whether all of the given modifiers are set in mods.
func HasAllModifiers(mods Modifiers, check ...Modifiers) bool {
	for _, c := range check {
		if mods&c == 0 {
			return false
		}
	}
	return true
}

// ModifiersString returns the modifiers as a "+" joined string,
// in the fixed order Shift, Control, Alt, Meta.
func (mods Modifiers) ModifiersString() string {
	var parts []string
	for _, mn := range modifierNames {
		if mods&mn.mod != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}

func (mods Modifiers) String() string {
	return mods.ModifiersString()
}

// ParseModifier returns the modifier for the given name, accepting the
// common aliases (ctrl, cmd, option, ...). The name is case insensitive.
func ParseModifier(name string) (Modifiers, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return Shift, true
	case "control", "ctrl":
		return Control, true
	case "alt", "option":
		return Alt, true
	case "meta", "cmd", "command", "super":
		return Meta, true
	}
	return 0, false
}
