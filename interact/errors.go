// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import "cogentcore.org/plotinteract/base/errors"

var (
	// ErrDuplicateTool is returned when adding a tool whose name is
	// already used on the component.
	ErrDuplicateTool = errors.New("interact: duplicate tool name")

	// ErrToolName is returned when adding a tool with an empty name.
	ErrToolName = errors.New("interact: tool has no name")

	// ErrToolAttached is returned when adding a tool that is already
	// attached to a component.
	ErrToolAttached = errors.New("interact: tool already attached to a component")

	// ErrUnknownTool is returned when a named tool is not on the component.
	ErrUnknownTool = errors.New("interact: unknown tool")

	// ErrNotAssociated is returned when making a tool active on a
	// component whose tool collection does not contain it.
	ErrNotAssociated = errors.New("interact: tool is not associated with the component")

	// ErrNotCaptive is returned when making a tool without the
	// [Captive] capability active.
	ErrNotCaptive = errors.New("interact: tool is not captive")

	// ErrActiveToolSet is returned when making a tool active while
	// another tool already holds the active slot.
	ErrActiveToolSet = errors.New("interact: another tool is already active")

	// ErrChildAttached is returned when adding a child that already
	// has a parent container.
	ErrChildAttached = errors.New("interact: component already has a parent")

	// ErrChildCycle is returned when adding a container as a child of
	// itself or of one of its descendants.
	ErrChildCycle = errors.New("interact: child contains the container")

	// ErrDuplicateChild is returned when adding a child whose name is
	// already used in the container.
	ErrDuplicateChild = errors.New("interact: duplicate child name")

	// ErrUnknownChild is returned when a named child is not in the container.
	ErrUnknownChild = errors.New("interact: unknown child")
)
