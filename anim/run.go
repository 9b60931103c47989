// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"context"
	"time"
)

// FrameInterval returns the frame interval for the given frames per second,
// defaulting to 60.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Run calls frame once per interval until ctx is done, and returns the
// context error. Ticks that are missed while frame runs are dropped by the
// ticker rather than queued, so frames are never run back to back.
func Run(ctx context.Context, interval time.Duration, frame func()) error {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			frame()
		}
	}
}
