// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera chooses the initial sundial camera from the viewport shape
// and maintains its projection as the viewport is resized.
package camera

import (
	"cogentcore.org/core/math32"
)

var (
	// PortraitPos is the camera position when the viewport is at least as tall as it is wide.
	PortraitPos = math32.Vec3(20, 70, 70)

	// LandscapePos is the camera position for wide viewports.
	LandscapePos = math32.Vec3(15, 45, 50)

	// Target is the point the camera looks at, slightly above the panel
	// center to frame the pole.
	Target = math32.Vec3(0, 10, 0)
)

// Camera is a perspective camera looking at a target.
type Camera struct {
	Pos    math32.Vector3
	Target math32.Vector3

	// UpDir is the up direction of the view, +Y.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the width / height ratio of the viewport.
	Aspect float32

	Near float32
	Far  float32

	// Width and Height are the current viewport size.
	Width, Height int
}

// Place returns the initial camera for a viewport of the given size.
// The position depends only on whether width <= height; it is not
// re-evaluated when the viewport is later resized.
func Place(width, height int) *Camera {
	cm := &Camera{
		Pos:    LandscapePos,
		Target: Target,
		UpDir:  math32.Vec3(0, 1, 0),
		FOV:    45,
		Aspect: 1,
		Near:   1,
		Far:    1000,
	}
	if IsPortrait(width, height) {
		cm.Pos = PortraitPos
	}
	cm.Resize(width, height)
	return cm
}

// IsPortrait returns whether the given viewport selects the portrait position.
func IsPortrait(width, height int) bool {
	return width <= height
}

// Resize updates the viewport size and the aspect ratio, leaving the
// position alone. A non-positive dimension keeps the previous aspect.
func (cm *Camera) Resize(width, height int) {
	cm.Width, cm.Height = width, height
	if width <= 0 || height <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the view matrix that transforms world coordinates
// into camera coordinates, where the camera looks down -Z.
func (cm *Camera) ViewMatrix() *math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(cm.Pos, cm.Target, cm.UpDir))
	scale := math32.Vec3(1, 1, 1)
	var cview math32.Matrix4
	cview.SetTransform(cm.Pos, lookq, scale)
	view, _ := cview.Inverse()
	return view
}

// Project maps a world point to normalized device coordinates in [-1, 1]
// (x right, y up), returning false if the point is behind the near plane.
func (cm *Camera) Project(view *math32.Matrix4, world math32.Vector3) (math32.Vector2, bool) {
	vp := world.MulMatrix4(view)
	depth := -vp.Z
	if depth < cm.Near {
		return math32.Vector2{}, false
	}
	f := 1 / math32.Tan(math32.DegToRad(cm.FOV)/2)
	return math32.Vec2(f*vp.X/(depth*cm.Aspect), f*vp.Y/depth), true
}
