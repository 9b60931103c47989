// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"time"
)

// Clock measures the time between frames. It relies on the monotonic
// reading of [time.Time], so wall clock jumps do not affect deltas.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock returns a clock started at the current time of now, which
// defaults to [time.Now] if nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	cl := &Clock{now: now}
	cl.Reset()
	return cl
}

// Reset restarts the clock: the next [Clock.Delta] measures from now.
func (cl *Clock) Reset() {
	cl.last = cl.now()
}

// Delta returns the time since the previous call, or since the clock
// was started or reset for the first call. It is never negative.
func (cl *Clock) Delta() time.Duration {
	t := cl.now()
	dt := t.Sub(cl.last)
	cl.last = t
	if dt < 0 {
		return 0
	}
	return dt
}
