// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolError(t *testing.T) {
	te := NewToolError("boom", "root", "plot", "tracker")
	assert.Equal(t, "panic: boom (root: plot: tracker)", te.Error())
	assert.Equal(t, "boom", te.Value)

	te = NewToolError(fs.ErrNotExist, "plot")
	assert.True(t, Is(te, fs.ErrNotExist))
	var target *ToolError
	assert.True(t, As(Join(New("other"), te), &target))
	assert.Equal(t, []string{"plot"}, target.Path)

	assert.Equal(t, "panic: 3", NewToolError(3).Error())
}

func TestLogHelpers(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("logged")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, "x", Must1("x", nil))
	assert.Panics(t, func() { Must1("x", err) })
}
