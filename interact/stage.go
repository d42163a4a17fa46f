// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"fmt"
	"image"

	"cogentcore.org/plotinteract/events"
)

// Stage identifies the step of [Component.Dispatch] delivering an event.
type Stage int32

const (
	// StageActive is delivery to the active tool.
	StageActive Stage = iota

	// StageOverlay is delivery to an overlay.
	StageOverlay

	// StageSelf is delivery to the component's own listeners,
	// which for a container includes its children.
	StageSelf

	// StageUnderlay is delivery to an underlay.
	StageUnderlay

	// StageListener is delivery to a listener tool.
	StageListener
)

var stageNames = [...]string{"active", "overlay", "self", "underlay", "listener"}

func (st Stage) String() string {
	if st < 0 || int(st) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int32(st))
	}
	return stageNames[st]
}

// ParseStage returns the stage with the given name.
func ParseStage(name string) (Stage, bool) {
	for i, nm := range stageNames {
		if nm == name {
			return Stage(i), true
		}
	}
	return StageActive, false
}

// Delivery records one handler invocation during dispatch.
// Components report deliveries to the nearest Observe function
// up their container chain.
type Delivery struct {

	// Path is the slash separated path of the component.
	Path string

	// Stage is the dispatch step.
	Stage Stage

	// Target names the handler: the tool name, or the decoration
	// index for overlays and underlays, or "self".
	Target string

	// Type is the event type.
	Type events.Types

	// Pos is the event position in the component's coordinates.
	Pos image.Point

	// Handled is whether the event was handled after the call.
	Handled bool

	// Err is set if the handler panicked.
	Err error
}

func (dl Delivery) String() string {
	s := fmt.Sprintf("%s %s %s %v (%d,%d)", dl.Path, dl.Stage, dl.Target, dl.Type, dl.Pos.X, dl.Pos.Y)
	if dl.Handled {
		s += " handled"
	}
	if dl.Err != nil {
		s += " error: " + dl.Err.Error()
	}
	return s
}
