// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params provides the live tunable parameters of the sundial
// animation. Each parameter is stored independently and atomically, so
// input handlers on any goroutine can write while the update loop reads,
// without a lock: no parameter depends on another.
package params

import (
	"math"
	"sync/atomic"

	"cogentcore.org/core/math32"
)

// Directions are the senses of rotation of the sun.
type Directions int32

const (
	// Clockwise, seen from above.
	Clockwise Directions = -1

	// AntiClockwise, seen from above.
	AntiClockwise Directions = 1
)

func (d Directions) String() string {
	if d == AntiClockwise {
		return "AntiClockwise"
	}
	return "Clockwise"
}

// Sign returns -1 or +1.
func (d Directions) Sign() float32 {
	if d == AntiClockwise {
		return 1
	}
	return -1
}

// Opposite returns the other direction.
func (d Directions) Opposite() Directions {
	if d == AntiClockwise {
		return Clockwise
	}
	return AntiClockwise
}

const (
	// MinLightSpeed is the slowest light speed.
	MinLightSpeed float32 = 0.1

	// MaxLightSpeed is the fastest light speed.
	MaxLightSpeed float32 = 10

	// DefaultLightSpeed is the light speed at startup.
	DefaultLightSpeed float32 = 0.1

	// SpeedStep is the light speed increment of keyboard controls.
	SpeedStep float32 = 0.1
)

// ProjectURL is the page opened by the GitHub action.
const ProjectURL = "https://github.com/kifuan/cyber-sundial"

// Tunables are the parameters read by the update loop every frame.
// The zero value is not usable; see [New] and [Defaults].
type Tunables struct {
	lightSpeed atomic.Uint32 // float32 bits
	direction  atomic.Int32
	showIcon   atomic.Bool
}

// New returns tunables with the given initial values, clamped to their domains.
func New(lightSpeed float32, dir Directions, showIcon bool) *Tunables {
	tp := &Tunables{}
	tp.SetLightSpeed(lightSpeed)
	tp.SetDirection(dir)
	tp.SetShowIcon(showIcon)
	return tp
}

// Defaults returns tunables with the startup values: slowest speed,
// clockwise, icon shown.
func Defaults() *Tunables {
	return New(DefaultLightSpeed, Clockwise, true)
}

// LightSpeed returns the angular rate multiplier.
func (tp *Tunables) LightSpeed() float32 {
	return math.Float32frombits(tp.lightSpeed.Load())
}

// SetLightSpeed sets the angular rate multiplier, clamped to
// [MinLightSpeed, MaxLightSpeed]. NaN is ignored.
func (tp *Tunables) SetLightSpeed(v float32) {
	if math32.IsNaN(v) {
		return
	}
	tp.lightSpeed.Store(math.Float32bits(math32.Clamp(v, MinLightSpeed, MaxLightSpeed)))
}

// AddLightSpeed adds delta to the light speed, clamped, and returns the new value.
func (tp *Tunables) AddLightSpeed(delta float32) float32 {
	for {
		old := tp.lightSpeed.Load()
		nv := math32.Clamp(math.Float32frombits(old)+delta, MinLightSpeed, MaxLightSpeed)
		if tp.lightSpeed.CompareAndSwap(old, math.Float32bits(nv)) {
			return nv
		}
	}
}

// Direction returns the sense of rotation.
func (tp *Tunables) Direction() Directions {
	return Directions(tp.direction.Load())
}

// SetDirection sets the sense of rotation. Any positive value is
// AntiClockwise and any other value is Clockwise.
func (tp *Tunables) SetDirection(d Directions) {
	if d > 0 {
		d = AntiClockwise
	} else {
		d = Clockwise
	}
	tp.direction.Store(int32(d))
}

// ToggleDirection reverses the direction and returns the new value.
func (tp *Tunables) ToggleDirection() Directions {
	for {
		old := tp.direction.Load()
		nd := Directions(old).Opposite()
		if tp.direction.CompareAndSwap(old, int32(nd)) {
			return nd
		}
	}
}

// ShowIcon returns whether the icon plaque is visible.
func (tp *Tunables) ShowIcon() bool {
	return tp.showIcon.Load()
}

// SetShowIcon sets whether the icon plaque is visible.
func (tp *Tunables) SetShowIcon(show bool) {
	tp.showIcon.Store(show)
}

// ToggleIcon flips the icon visibility and returns the new value.
func (tp *Tunables) ToggleIcon() bool {
	for {
		old := tp.showIcon.Load()
		if tp.showIcon.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Snapshot is a copy of the tunables taken at one point in time.
// Fields are read one at a time; there is no cross-field consistency.
type Snapshot struct {
	LightSpeed float32
	Direction  Directions
	ShowIcon   bool
}

// Snapshot reads all parameters.
func (tp *Tunables) Snapshot() Snapshot {
	return Snapshot{
		LightSpeed: tp.LightSpeed(),
		Direction:  tp.Direction(),
		ShowIcon:   tp.ShowIcon(),
	}
}

// Rate returns the signed angular rate in radians per second.
func (sn Snapshot) Rate() float32 {
	return sn.LightSpeed * sn.Direction.Sign()
}
