// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"fmt"
	"strings"

	"cogentcore.org/plotinteract/base/errors"
)

// Spec specifies a key chord that a tool reacts to, such as "Escape"
// to cancel an interaction or "Control+z" to toggle a mode.
// The zero value matches nothing.
type Spec struct {
	// Name is the normalized name of the primary key.
	Name string

	// Mods are the modifiers that must be held. Extra modifiers
	// held when the key is pressed prevent a match.
	Mods Modifiers
}

// NewSpec parses the given chord string into a [Spec].
// Chords are "+" separated with the primary key last, for example
// "Escape", "z", "Control+Shift+z" or "ctrl+z".
func NewSpec(chord string) (Spec, error) {
	var sp Spec
	chord = strings.TrimSpace(chord)
	if chord == "" {
		return sp, fmt.Errorf("key.NewSpec: empty chord")
	}
	parts := strings.Split(chord, "+")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return sp, fmt.Errorf("key.NewSpec: empty element in chord %q", chord)
		}
		if i < len(parts)-1 {
			mod, ok := ParseModifier(part)
			if !ok {
				return sp, fmt.Errorf("key.NewSpec: unknown modifier %q in chord %q", part, chord)
			}
			sp.Mods |= mod
			continue
		}
		sp.Name = NormalizeName(part)
	}
	return sp, nil
}

// MustSpec is like [NewSpec] but panics on an invalid chord.
// It is intended for package level key spec defaults.
func MustSpec(chord string) Spec {
	return errors.Must1(NewSpec(chord))
}

// NormalizeName returns the canonical name for a primary key,
// folding aliases (esc, return, ...) and lowercasing single letters.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "esc", "escape":
		return "Escape"
	case "return", "enter":
		return "Enter"
	case "backspace":
		return "Backspace"
	case "delete", "del":
		return "Delete"
	case "tab":
		return "Tab"
	}
	if len([]rune(name)) == 1 {
		return strings.ToLower(name)
	}
	return name
}

// Match returns whether a key with the given name and modifiers
// matches this spec.
func (sp Spec) Match(name string, mods Modifiers) bool {
	if sp.Name == "" {
		return false
	}
	return sp.Name == NormalizeName(name) && sp.Mods == mods
}

// IsZero returns whether the spec is unset.
func (sp Spec) IsZero() bool {
	return sp.Name == ""
}

// String returns the chord string for the spec.
func (sp Spec) String() string {
	if sp.Mods == 0 {
		return sp.Name
	}
	return sp.Mods.ModifiersString() + "+" + sp.Name
}

// MarshalText implements [encoding.TextMarshaler].
func (sp Spec) MarshalText() ([]byte, error) {
	return []byte(sp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sp *Spec) UnmarshalText(text []byte) error {
	nsp, err := NewSpec(string(text))
	if err != nil {
		return err
	}
	*sp = nsp
	return nil
}
