// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lights builds the lighting rig of the sundial: an ambient light,
// a fill and a key directional light, and the spot light that plays the sun,
// mounted on a container that is rotated about the vertical axis.
package lights

import (
	"image/color"
	"math"
	"math/rand"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Rand is a source of uniform random numbers, such as a [rand.Rand].
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// globalRand draws from the global source of the math/rand package.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Ambient provides uniform lighting with no position.
type Ambient struct {
	Color     color.RGBA
	Intensity float32
}

// Directional is a light shining from Pos toward the origin, like the sun.
type Directional struct {
	Color     color.RGBA
	Intensity float32
	Pos       math32.Vector3
}

// Spot is a cone of light. Pos is relative to the rig container.
type Spot struct {
	Color     color.RGBA
	Intensity float32

	// Angle is the cone half angle, in radians.
	Angle float32

	Pos math32.Vector3

	// Target is the world point the light is aimed at.
	Target math32.Vector3

	CastShadow bool
}

// Rig holds all the lights of the scene.
type Rig struct {
	Ambient Ambient

	// Fill is the dim light from above.
	Fill Directional

	// Key is the brighter light from below.
	Key Directional

	// Spot is the sun, mounted on the rotating container.
	Spot Spot

	// Yaw is the initial rotation of the container about +Y, in [0, 2π).
	Yaw float32
}

// NewRig returns the standard lighting rig with the given ambient color.
// The container yaw is drawn uniformly from rnd, which uses the global
// source if nil.
func NewRig(ambient color.RGBA, rnd Rand) *Rig {
	if rnd == nil {
		rnd = globalRand{}
	}
	lr := &Rig{}
	lr.Ambient = Ambient{Color: ambient, Intensity: 1}
	lr.Fill = Directional{Color: colors.White, Intensity: 0.1, Pos: math32.Vec3(10, 10, 10)}
	lr.Key = Directional{Color: colors.White, Intensity: 0.5, Pos: math32.Vec3(-10, -10, -10)}
	lr.Spot = Spot{
		Color:      colors.White,
		Intensity:  1,
		Angle:      math32.Pi / 5,
		Pos:        math32.Vec3(40, 40, 10),
		CastShadow: true,
	}
	lr.Yaw = RandomYaw(rnd)
	return lr
}

// RandomYaw returns a uniform angle in [0, 2π).
func RandomYaw(rnd Rand) float32 {
	yaw := float32(rnd.Float64() * 2 * math.Pi)
	if yaw >= 2*math32.Pi { // float32 rounding of values just below 2π
		yaw = 0
	}
	return yaw
}
