// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDelay is how long to wait after a change before re-running, so that
// the several events of an editor save cause a single run.
const watchDelay = 100 * time.Millisecond

// watch calls run whenever one of the files changes, until the context is
// done. The directories of the files are watched, not the files, so that
// editors replacing a file on save keep being followed.
func watch(ctx context.Context, files []string, run func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	var abs []string
	for _, f := range files {
		af, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		abs = append(abs, af)
		dir := filepath.Dir(af)
		if slices.Contains(w.WatchList(), dir) {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	timer := time.NewTimer(watchDelay)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !slices.Contains(abs, filepath.Clean(ev.Name)) {
				continue
			}
			slog.Debug("file changed", "file", ev.Name, "op", ev.Op)
			timer.Reset(watchDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching files", "err", err)
		case <-timer.C:
			run()
		}
	}
}
