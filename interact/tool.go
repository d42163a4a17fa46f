// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"fmt"
	"strings"

	"cogentcore.org/plotinteract/events"
)

// Tool is a stateful handler of input events attached to a [Component].
// All tools embed a [ToolBase], which implements the activation state
// machine and a default HandleEvent that routes events to the handlers
// registered with [ToolBase.On] for the current state.
type Tool interface {
	// AsToolBase returns the embedded [ToolBase].
	AsToolBase() *ToolBase

	// HandleEvent processes the event. It is called once per event, either
	// because the tool is active on its component or during the listener
	// pass. Tools may call SetHandled on the event, which only has an effect
	// when the tool is the active tool.
	HandleEvent(e events.Event)
}

// Capabilities are bit flags declaring how a tool takes part in dispatch.
type Capabilities int32

const (
	// Listener tools receive every event that reaches the listener pass
	// of their component.
	Listener Capabilities = 1 << iota

	// Captive tools may occupy the active slot of their component and then
	// receive events before anything else.
	Captive
)

// Has returns whether all of the given capabilities are set.
func (cp Capabilities) Has(c Capabilities) bool {
	return cp&c == c
}

func (cp Capabilities) String() string {
	var parts []string
	if cp.Has(Listener) {
		parts = append(parts, "Listener")
	}
	if cp.Has(Captive) {
		parts = append(parts, "Captive")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// States are the activation states of a tool.
type States int32

const (
	// AnyState is used with [ToolBase.On] to register a handler
	// that runs in every state. A tool is never in AnyState.
	AnyState States = iota - 1

	// Idle tools are not engaged in any interaction.
	Idle

	// Listening tools have seen the start of a possible captive
	// interaction (e.g. a button press) and are waiting to activate.
	Listening

	// Active tools hold the active slot of their component.
	Active
)

func (st States) String() string {
	switch st {
	case AnyState:
		return "AnyState"
	case Idle:
		return "Idle"
	case Listening:
		return "Listening"
	case Active:
		return "Active"
	}
	return fmt.Sprintf("States(%d)", int32(st))
}
