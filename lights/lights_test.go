// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lights

import (
	"math/rand"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// fixedRand returns the same Float64 every time.
type fixedRand struct {
	v float64
}

func (fr *fixedRand) Float64() float64 { return fr.v }

func TestRig(t *testing.T) {
	amb := colors.FromRGB(0x22, 0x22, 0x22)
	lr := NewRig(amb, rand.New(rand.NewSource(1)))

	assert.Equal(t, amb, lr.Ambient.Color)
	assert.Equal(t, float32(1), lr.Ambient.Intensity)

	assert.Equal(t, math32.Vec3(10, 10, 10), lr.Fill.Pos)
	assert.Equal(t, float32(0.1), lr.Fill.Intensity)
	assert.Equal(t, math32.Vec3(-10, -10, -10), lr.Key.Pos)
	assert.Equal(t, float32(0.5), lr.Key.Intensity)

	assert.Equal(t, math32.Vec3(40, 40, 10), lr.Spot.Pos)
	assert.InDelta(t, math32.Pi/5, lr.Spot.Angle, 1e-6)
	assert.True(t, lr.Spot.CastShadow)
	assert.Equal(t, math32.Vector3{}, lr.Spot.Target)

	assert.GreaterOrEqual(t, lr.Yaw, float32(0))
	assert.Less(t, lr.Yaw, float32(2*math32.Pi))
}

func TestRigYaw(t *testing.T) {
	lr := NewRig(colors.Black, &fixedRand{v: 0.25})
	assert.InDelta(t, math32.Pi/2, lr.Yaw, 1e-6)

	lr = NewRig(colors.Black, &fixedRand{v: 0})
	assert.Equal(t, float32(0), lr.Yaw)

	lr = NewRig(colors.Black, &fixedRand{v: 0.99999999999})
	assert.Less(t, lr.Yaw, float32(2*math32.Pi))
}

func TestRigSeeded(t *testing.T) {
	a := NewRig(colors.Black, rand.New(rand.NewSource(42)))
	b := NewRig(colors.Black, rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Yaw, b.Yaw)

	// each rig consumes one independent draw
	rnd := rand.New(rand.NewSource(7))
	yaws := map[float32]bool{}
	for range 8 {
		yaws[NewRig(colors.Black, rnd).Yaw] = true
	}
	assert.Greater(t, len(yaws), 1)
}

func TestRigNilRand(t *testing.T) {
	lr := NewRig(colors.Black, nil)
	assert.GreaterOrEqual(t, lr.Yaw, float32(0))
	assert.Less(t, lr.Yaw, float32(2*math32.Pi))
}
