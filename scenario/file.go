// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario builds component hierarchies from YAML scene files and
// replays scripted input against them, recording a trace of every delivery.
// It is used by the plotinteract command and by tests to exercise dispatch
// end to end.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a scene file.
type File struct {

	// Defaults are merged into every tool spec, for the fields
	// the tool spec leaves empty.
	Defaults ToolSpec `yaml:"defaults"`

	// Root is the root container.
	Root NodeSpec `yaml:"root"`
}

// NodeSpec describes a component, or a container if it has children.
type NodeSpec struct {
	Name string `yaml:"name"`

	// Rect is the placement in the parent as x0, y0, x1, y1.
	// It is ignored for the root.
	Rect []int `yaml:"rect"`

	// Size is the size of the root as width, height.
	Size []int `yaml:"size"`

	// Container makes the node a container even without children.
	Container bool `yaml:"container"`

	// Handle lists the event types the component's own handler marks
	// handled; the component only records the others.
	Handle []string `yaml:"handle"`

	Tools     []ToolSpec       `yaml:"tools"`
	Overlays  []DecorationSpec `yaml:"overlays"`
	Underlays []DecorationSpec `yaml:"underlays"`
	Children  []NodeSpec       `yaml:"children"`
}

// ToolSpec describes a tool.
type ToolSpec struct {

	// Kind is drag, tracker or recorder.
	Kind string `yaml:"kind"`

	Name string `yaml:"name"`

	// Button is the drag button: left, middle or right.
	Button string `yaml:"button"`

	// Mods are the "+" separated modifiers a drag requires.
	Mods string `yaml:"mods"`

	// Threshold is the drag threshold in pixels.
	Threshold float32 `yaml:"threshold"`

	// CancelKey is the chord canceling a drag.
	CancelKey string `yaml:"cancel_key"`

	// CancelOnLeave cancels an active drag when the pointer leaves.
	CancelOnLeave bool `yaml:"cancel_on_leave"`

	// EnableKey makes a drag toggled: presses are ignored until the
	// key enables it.
	EnableKey string `yaml:"enable_key"`

	// DisableKey disables a toggled drag. It defaults to EnableKey.
	DisableKey string `yaml:"disable_key"`

	// DisableOnComplete disables a toggled drag after each drag.
	DisableOnComplete bool `yaml:"disable_on_complete"`

	// Listener and Captive are the capabilities of a recorder.
	Listener bool `yaml:"listener"`
	Captive  bool `yaml:"captive"`

	// Active makes a captive recorder the active tool at build time.
	Active bool `yaml:"active"`

	// Handle lists the event types a recorder marks handled.
	Handle []string `yaml:"handle"`
}

// DecorationSpec describes an overlay or underlay.
type DecorationSpec struct {

	// Kind is legend or recorder.
	Kind string `yaml:"kind"`

	Name string `yaml:"name"`

	// Legend fields.
	Align       string   `yaml:"align"`
	Padding     int      `yaml:"padding"`
	Labels      []string `yaml:"labels"`
	Size        []int    `yaml:"size"`
	PassThrough bool     `yaml:"pass_through"`
	Hidden      bool     `yaml:"hidden"`

	// Handle lists the event types a recorder marks handled.
	Handle []string `yaml:"handle"`
}

// Parse parses a scene file. Unknown fields are an error.
func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("scenario: parsing scene: %w", err)
	}
	if f.Root.Name == "" {
		f.Root.Name = "root"
	}
	return f, nil
}

// Open reads and parses the scene file at the given path.
func Open(filename string) (*File, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}
