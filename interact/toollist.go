// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import "slices"

// toolList is the ordered tool collection of a component. Order is
// insertion order, which is the listener notification order. Lookups by
// name use the current tool names, so a tool renamed after being added
// is found under its new name.
type toolList struct {
	values []Tool
}

func (tl *toolList) len() int {
	return len(tl.values)
}

// add appends the tool, failing if it has no name or its name is
// already present.
func (tl *toolList) add(t Tool) error {
	name := t.AsToolBase().Name
	if name == "" {
		return ErrToolName
	}
	if tl.index(name) >= 0 {
		return ErrDuplicateTool
	}
	tl.values = append(tl.values, t)
	return nil
}

func (tl *toolList) index(name string) int {
	return slices.IndexFunc(tl.values, func(t Tool) bool {
		return t.AsToolBase().Name == name
	})
}

// at returns the first tool with the given name, or nil.
func (tl *toolList) at(name string) Tool {
	if idx := tl.index(name); idx >= 0 {
		return tl.values[idx]
	}
	return nil
}

// contains returns whether this exact tool is in the list.
func (tl *toolList) contains(t Tool) bool {
	return t != nil && slices.Contains(tl.values, t)
}

// remove deletes the given tool, returning whether it was present.
func (tl *toolList) remove(t Tool) bool {
	idx := slices.Index(tl.values, t)
	if idx < 0 {
		return false
	}
	tl.values = slices.Delete(tl.values, idx, idx+1)
	return true
}

// snapshot returns a copy of the tools in order, safe to iterate while
// the list is modified.
func (tl *toolList) snapshot() []Tool {
	return slices.Clone(tl.values)
}
