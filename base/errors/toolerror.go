// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strings"
)

// ToolError reports a failure (a recovered panic) inside one handler
// during event dispatch. Path records where the handler sits, outermost
// first, for example ["root", "plot", "listener", "tracker"].
type ToolError struct {
	Base error
	Path []string

	// Value is the recovered panic value.
	Value any
}

// NewToolError returns a [*ToolError] for the recovered panic value
// at the given dispatch path. If the value is itself an error it becomes
// the base error so that [errors.Is] sees through it.
func NewToolError(value any, path ...string) *ToolError {
	err, ok := value.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", value)
	}
	return &ToolError{Base: err, Path: path, Value: value}
}

// Error returns the base error string followed by the dispatch path.
func (e *ToolError) Error() string {
	res := e.Base.Error()
	if len(e.Path) > 0 {
		res += " (" + strings.Join(e.Path, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error.
func (e *ToolError) Unwrap() error {
	return e.Base
}
