// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the per-frame update of the sundial: it integrates
// the yaw of the rotating light container over elapsed time, and applies
// the icon visibility, from the live tunable parameters.
package anim

import (
	"time"

	"cogentcore.org/sundial/params"
	"cogentcore.org/sundial/scene"
)

// States are the states of a [Loop].
type States int32

const (
	// Idle is the state before the first frame.
	Idle States = iota

	// Running is the state from the first frame on; there is no way out.
	Running
)

func (s States) String() string {
	if s == Running {
		return "Running"
	}
	return "Idle"
}

// Loop is the update loop. It is the single writer of the scene graph
// after construction, and is not safe for concurrent use; the
// [params.Tunables] it reads are.
type Loop struct {

	// Spinner is the rotating light container.
	Spinner *scene.Node

	// Icon is the icon plaque, which may be nil.
	Icon *scene.Node

	// Params are read every frame.
	Params *params.Tunables

	// Clock measures frame deltas for [Loop.Frame].
	Clock *Clock

	// Render is called at the end of every frame to request a render.
	Render func()

	// State is Idle until the first frame.
	State States

	// Theta is the accumulated yaw of the spinner since the loop started,
	// in radians. It is not normalized.
	Theta float32

	// Frames is the number of frames run.
	Frames int
}

// NewLoop returns a new idle loop on the given scene graph nodes.
func NewLoop(spinner, icon *scene.Node, tp *params.Tunables) *Loop {
	return &Loop{Spinner: spinner, Icon: icon, Params: tp, Clock: NewClock(nil)}
}

// Start restarts the clock so that the first frame measures from now.
func (lp *Loop) Start() {
	lp.Clock.Reset()
}

// Frame runs one frame, using the clock for the elapsed time.
func (lp *Loop) Frame() {
	lp.Step(lp.Clock.Delta())
}

// Step runs one frame for the given elapsed time. A negative time is
// treated as zero, since frame time only moves forward. The yaw increment
// is composed onto the spinner's current rotation, so floating point error
// accumulates over long runs; that drift is not corrected.
func (lp *Loop) Step(dt time.Duration) {
	dt = max(dt, 0)
	lp.State = Running
	lp.Frames++
	sn := lp.Params.Snapshot()
	dth := float32(dt.Seconds()) * sn.Rate()
	lp.Theta += dth
	if lp.Spinner != nil && dth != 0 {
		lp.Spinner.Pose.RotateOnAxisRad(0, 1, 0, dth)
	}
	if lp.Icon != nil {
		lp.Icon.Visible = sn.ShowIcon
	}
	if lp.Render != nil {
		lp.Render()
	}
}
