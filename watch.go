// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sundial

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/sundial/params"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// Live are the tunable values that can be set from a watched file.
// Unset fields leave the current value alone.
type Live struct {
	LightSpeed    *float32
	Anticlockwise *bool
	HideIcon      *bool
}

// Apply writes the set fields of lv to tp.
func (lv *Live) Apply(tp *params.Tunables) {
	if lv.LightSpeed != nil {
		tp.SetLightSpeed(*lv.LightSpeed)
	}
	if lv.Anticlockwise != nil {
		if *lv.Anticlockwise {
			tp.SetDirection(params.AntiClockwise)
		} else {
			tp.SetDirection(params.Clockwise)
		}
	}
	if lv.HideIcon != nil {
		tp.SetShowIcon(!*lv.HideIcon)
	}
}

// ReadLive reads the live values from the toml file at path.
func ReadLive(path string) (*Live, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lv := &Live{}
	if err := toml.Unmarshal(b, lv); err != nil {
		return nil, fmt.Errorf("sundial: parsing %s: %w", path, err)
	}
	return lv, nil
}

// Watch applies the live values in the toml file at path to tp now and
// every time the file is written, until ctx is done. The directory is
// watched rather than the file so that editors that replace the file
// on save are followed. Read errors are logged and the previous values
// kept.
func Watch(ctx context.Context, path string, tp *params.Tunables) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("sundial: watching %s: %w", path, err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("sundial: watching %s: %w", path, err)
	}
	reload(path, tp)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reload(path, tp)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("sundial: watch error", "file", path, "err", err)
		}
	}
}

func reload(path string, tp *params.Tunables) {
	lv, err := ReadLive(path)
	if err != nil {
		slog.Warn("sundial: reloading parameters", "err", err)
		return
	}
	lv.Apply(tp)
	slog.Debug("sundial: parameters reloaded", "file", path, "params", tp.Snapshot())
}
