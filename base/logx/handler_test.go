// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandlerLevel(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))
	logger.Debug("this is debug")
	logger.Info("this is info", "tool", "drag")
	logger.Warn("this is warn")

	out := buf.String()
	assert.NotContains(t, out, "this is debug")
	assert.Contains(t, out, "this is info")
	assert.Contains(t, out, "tool=drag")
	// a bytes.Buffer is not a terminal, so no escape codes are written
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, termenv.Color(termenv.ANSIRed), LevelColor(slog.LevelError))
	assert.Equal(t, termenv.Color(termenv.ANSIYellow), LevelColor(slog.LevelWarn))
	assert.Equal(t, termenv.Color(termenv.ANSIBlue), LevelColor(slog.LevelInfo))
	assert.Equal(t, termenv.Color(termenv.ANSIBrightBlack), LevelColor(slog.LevelDebug))
}

func TestDefaultLogger(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	defer slog.SetDefault(slog.Default())
	UserLevel = slog.LevelDebug

	var buf bytes.Buffer
	SetDefaultLogger(&buf)
	slog.Debug("this is debug")
	slog.Info("this is info")
	assert.Contains(t, buf.String(), "this is debug")
	assert.Contains(t, buf.String(), "this is info")

	UserLevel = slog.LevelError
	buf.Reset()
	SetDefaultLogger(&buf)
	slog.Warn("this is warn")
	assert.Empty(t, buf.String())
}
