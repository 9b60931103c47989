// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func assertVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
	assert.InDelta(t, want.Z, got.Z, tol, "Z")
}

func TestPoseDefaults(t *testing.T) {
	var ps Pose
	ps.Defaults()
	assert.Equal(t, math32.Vec3(1, 1, 1), ps.Scale)
	assert.True(t, ps.Quat.IsIdentity())

	ps.Scale.Set(2, 3, 4)
	ps.Defaults()
	assert.Equal(t, math32.Vec3(2, 3, 4), ps.Scale)
}

func TestPoseRotate(t *testing.T) {
	var a, b Pose
	a.Defaults()
	b.Defaults()
	a.RotateOnAxisRad(0, 1, 0, math32.Pi/4)
	a.RotateOnAxisRad(0, 1, 0, math32.Pi/4)
	b.SetAxisRotationRad(0, 1, 0, math32.Pi/2)
	assertVector(t, b.Forward(), a.Forward())
	// -Z rotated by +90 degrees of yaw points down -X
	assertVector(t, math32.Vec3(-1, 0, 0), a.Forward())

	a.RotateOnAxisRad(0, 1, 0, -math32.Pi/2)
	assertVector(t, math32.Vec3(0, 0, -1), a.Forward())

}

func TestPoseLookAt(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.Pos.Set(5, 0, 0)
	ps.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	assertVector(t, math32.Vec3(-1, 0, 0), ps.Forward())

	ps.Pos.Set(0, 2, 5)
	ps.LookAt(math32.Vec3(0, 2, 0), math32.Vec3(0, 1, 0))
	assertVector(t, math32.Vec3(0, 0, -1), ps.Forward())
}

func TestTree(t *testing.T) {
	sc := New()
	a := NewNode(sc.Root, "a", Group)
	b := NewNode(a, "b", Mesh)
	c := NewNode(sc.Root, "c", SpotLight)

	assert.Equal(t, 4, sc.NumNodes())
	assert.Same(t, a, sc.Root.ChildByName("a"))
	assert.Nil(t, sc.Root.ChildByName("b"))
	assert.Same(t, b, sc.FindNode("b"))
	assert.Nil(t, sc.FindNode("nope"))
	assert.Same(t, a, b.Parent())
	assert.Equal(t, []*Node{c}, sc.Lights())

	counts := sc.CountKinds()
	assert.Equal(t, 2, counts[Group])
	assert.Equal(t, 1, counts[Mesh])
	assert.Equal(t, 1, counts[SpotLight])

	// reparenting detaches from the old parent
	c.AddChild(b)
	assert.Empty(t, a.Children)
	assert.Same(t, c, b.Parent())
	assert.Equal(t, 4, sc.NumNodes())

	assert.True(t, c.DeleteChild(b))
	assert.False(t, c.DeleteChild(b))
	assert.Nil(t, b.Parent())
	assert.Equal(t, 3, sc.NumNodes())
}

func TestWalkDownSkip(t *testing.T) {
	sc := New()
	a := NewNode(sc.Root, "a", Group)
	NewNode(a, "a1", Mesh)
	NewNode(sc.Root, "b", Mesh)

	var names []string
	sc.Root.WalkDown(func(k *Node) bool {
		names = append(names, k.Name)
		return k.Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)
}

func TestVisibility(t *testing.T) {
	sc := New()
	a := NewNode(sc.Root, "a", Group)
	b := NewNode(a, "b", Mesh)
	assert.True(t, b.IsVisible())
	a.Visible = false
	assert.False(t, b.IsVisible())
	assert.True(t, b.Visible)
}

func TestWorldPos(t *testing.T) {
	sc := New()
	spin := NewNode(sc.Root, "spin", Group)
	spin.Pose.Pos.Set(1, 2, 3)
	sun := NewNode(spin, "sun", SpotLight)
	sun.Pose.Pos.Set(40, 40, 10)

	assertVector(t, math32.Vec3(41, 42, 13), sun.WorldPos())

	spin.Pose.SetAxisRotationRad(0, 1, 0, math32.Pi/2)
	// yaw of +90 degrees maps (x, y, z) to (z, y, -x)
	assertVector(t, math32.Vec3(11, 42, -37), sun.WorldPos())

	spin.Pose.Scale.Set(2, 2, 2)
	assertVector(t, math32.Vec3(21, 82, -77), sun.WorldPos())
}

func TestWorldMatrixRoot(t *testing.T) {
	sc := New()
	sc.Root.Pose.Pos.Set(0, -1, 0)
	n := NewNode(sc.Root, "n", Mesh)
	require.NotNil(t, n.Parent())
	assertVector(t, math32.Vec3(0, -1, 0), n.WorldPos())
	assertVector(t, math32.Vec3(0, -1, 0), sc.Root.WorldPos())
}

func TestKindsString(t *testing.T) {
	assert.Equal(t, "SpotLight", SpotLight.String())
	assert.Equal(t, "Kinds(?)", Kinds(42).String())
	assert.True(t, DirectionalLight.IsLight())
	assert.False(t, Mesh.IsLight())
}
