// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes the placement of the static sundial geometry:
// the panel, the pole, the icon plaque, and the radial hour ticks.
// All functions are pure.
package layout

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// NumTicks is the number of hour ticks around the panel.
const NumTicks = 12

// TickRadiusFactor is the fraction of the panel radius at which ticks are placed.
const TickRadiusFactor = 0.85

// Params are the immutable scene parameters, set once at construction.
type Params struct {

	// Radius is the radius of the panel disc.
	Radius float32

	// NumTicks is the number of ticks; always [NumTicks].
	NumTicks int

	// TickHeight is the height of the tick centers above the panel center.
	TickHeight float32

	// Background is the scene background and fog color.
	Background color.RGBA

	// ScaleColor is the color of the ticks.
	ScaleColor color.RGBA

	// Primary is the color of the panel, pole and icon.
	Primary color.RGBA

	// Ambient is the color of the ambient light.
	Ambient color.RGBA

	// ShowIcon is the default visibility of the icon plaque.
	ShowIcon bool

	// FogDensity is the exponential fog density.
	FogDensity float32
}

// DefaultParams returns the standard sundial parameters for the given
// panel radius, which must be positive. The icon is shown.
func DefaultParams(radius float32) Params {
	p := Params{Radius: radius, ShowIcon: true}
	p.Defaults()
	return p
}

// Defaults fills in any unset values. ShowIcon is left alone, since
// its zero value is meaningful.
func (p *Params) Defaults() {
	if p.Radius <= 0 {
		p.Radius = 15
	}
	p.NumTicks = NumTicks
	if p.TickHeight == 0 {
		p.TickHeight = 0.5
	}
	if p.Background == (color.RGBA{}) {
		p.Background = colors.FromRGB(0xcc, 0xcc, 0xcc)
	}
	if p.ScaleColor == (color.RGBA{}) {
		p.ScaleColor = colors.FromRGB(0x84, 0x84, 0x82)
	}
	if p.Primary == (color.RGBA{}) {
		p.Primary = colors.FromRGB(0xff, 0xff, 0xff)
	}
	if p.Ambient == (color.RGBA{}) {
		p.Ambient = colors.FromRGB(0x22, 0x22, 0x22)
	}
	if p.FogDensity == 0 {
		p.FogDensity = 0.002
	}
}

// Center returns the point the ticks face: the panel center at tick height.
func (p *Params) Center() math32.Vector3 {
	return math32.Vec3(0, p.TickHeight, 0)
}

// Placement is the position and orientation of one tick.
type Placement struct {
	Index int

	// Angle is counter-clockwise from +X in the horizontal plane, in radians.
	Angle float32

	Pos  math32.Vector3
	Quat math32.Quat
}

// Forward returns the local forward (-Z) axis of the placement.
func (pl *Placement) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(pl.Quat)
}

// TickAngle returns the angle of tick i out of n.
func TickAngle(i, n int) float32 {
	return float32(i) * 2 * math32.Pi / float32(n)
}

// Tick returns the placement of tick i.
func Tick(p *Params, i int) Placement {
	ang := TickAngle(i, p.NumTicks)
	r := TickRadiusFactor * p.Radius
	pl := Placement{Index: i, Angle: ang}
	pl.Pos = math32.Vec3(math32.Cos(ang)*r, p.TickHeight, math32.Sin(ang)*r)
	pl.Quat.SetFromRotationMatrix(math32.NewLookAt(pl.Pos, p.Center(), math32.Vec3(0, 1, 0)))
	return pl
}

// Ticks returns the placements of all ticks.
func Ticks(p *Params) []Placement {
	pls := make([]Placement, p.NumTicks)
	for i := range pls {
		pls[i] = Tick(p, i)
	}
	return pls
}

// Cylinder is an upright cylinder centered on Pos.
type Cylinder struct {
	Radius   float32
	Height   float32
	Segments int
	Pos      math32.Vector3
}

// Box is a box of the given Size centered on Pos, scaled by Scale.
type Box struct {
	Size  math32.Vector3
	Pos   math32.Vector3
	Scale math32.Vector3
}

// Panel returns the panel disc: radius R, thickness 1, at the origin.
func Panel(p *Params) Cylinder {
	return Cylinder{Radius: p.Radius, Height: 1, Segments: 150}
}

// Pole returns the central pole: radius 0.5, height 16, centered at height 8.
func Pole(p *Params) Cylinder {
	return Cylinder{Radius: 0.5, Height: 16, Segments: 32, Pos: math32.Vec3(0, 8, 0)}
}

// Icon returns the icon plaque, lying just above the panel toward +Z.
func Icon(p *Params) Box {
	return Box{
		Size:  math32.Vec3(p.Radius/2, 0.1, p.Radius/6),
		Pos:   math32.Vec3(0, 0.5, p.Radius/4),
		Scale: math32.Vec3(2, 0.1, 2),
	}
}

// TickBox returns the shape of one tick, long along its forward axis.
// Its position is given by [Tick].
func TickBox(p *Params) Box {
	return Box{
		Size:  math32.Vec3(0.5, 0.5, p.Radius/4),
		Scale: math32.Vec3(1, 0.1, 1),
	}
}
