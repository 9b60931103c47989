// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position and orientation,
// always relative to the parent node.
type Pose struct {

	// Pos is the position of the center of the node, relative to its parent.
	Pos math32.Vector3

	// Scale is the scale, relative to the parent.
	Scale math32.Vector3

	// Quat is the rotation of the node, relative to the parent.
	Quat math32.Quat
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Matrix returns the local transform matrix based on position, rotation and scale.
func (ps *Pose) Matrix() math32.Matrix4 {
	ps.Defaults()
	var m math32.Matrix4
	m.SetTransform(ps.Pos, ps.Quat, ps.Scale)
	return m
}

//////// 		Rotating

// SetAxisRotationRad sets rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// RotateOnAxisRad rotates around the specified local axis the specified angle
// in radians, composing with the existing rotation.
func (ps *Pose) RotateOnAxisRad(x, y, z, angle float32) {
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), angle))
}

// LookAt points the node at given target location using given up direction.
// The local -Z axis ends up pointing at the target.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

// Forward returns the local -Z axis rotated into the parent frame.
func (ps *Pose) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(ps.Quat)
}
