// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sundialcore

import (
	"fmt"
	"io/fs"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/sundial/scene"
)

// SyncAngle is the smallest change in the direction of the sun, in
// radians, that is pushed to the renderer. Lights are not part of the
// xyz tree, so a moved light is written to the Phong light table.
const SyncAngle = 0.005

// Mirror is the xyz counterpart of a [scene.Scene]. It is built once and
// then kept in step with the scene graph by [Mirror.Sync].
type Mirror struct {

	// XYZ is the mirrored scene.
	XYZ *xyz.Scene

	// Scene is the source scene graph.
	Scene *scene.Scene

	// Spot is the light that plays the sun.
	Spot *xyz.Spot

	// spotIndex is the index of Spot among the spot lights of the scene.
	spotIndex int

	// Icon is the solid for the icon plaque.
	Icon *xyz.Solid

	// sun is the source node of Spot.
	sun *scene.Node

	// groups are the group pairs whose poses are synced.
	groups []groupPair

	// sunDir is the direction of the sun last pushed to the renderer.
	sunDir math32.Vector3

	// LightUpdates counts the sun moves pushed to the renderer.
	LightUpdates int
}

type groupPair struct {
	src *scene.Node
	dst *xyz.Group
}

// NewMirror creates the xyz nodes, meshes and lights for every node of
// src in sc. The icon texture is read from iconFS, which may be nil to
// skip textures.
func NewMirror(sc *xyz.Scene, src *scene.Scene, iconFS fs.FS) *Mirror {
	m := &Mirror{XYZ: sc, Scene: src}
	sc.Background = colors.Uniform(src.Background)
	for _, k := range src.Root.Children {
		m.add(sc, k, iconFS)
	}
	// xyz lights live on the scene, not in the tree
	for _, n := range src.Lights() {
		m.addLight(n)
	}
	m.sunDir = m.sunDirection()
	slog.Debug("sundialcore: mirror built", "solids", sc.NumChildren(), "lights", sc.Lights.Len(), "meshes", sc.Meshes.Len())
	return m
}

func (m *Mirror) add(parent tree.Node, n *scene.Node, iconFS fs.FS) {
	sc := m.XYZ
	switch n.Kind {
	case scene.Group:
		gp := xyz.NewGroup(parent)
		gp.SetName(n.Name)
		setPose(&gp.Pose, &n.Pose)
		gp.Invisible = !n.Visible
		m.groups = append(m.groups, groupPair{src: n, dst: gp})
		for _, k := range n.Children {
			m.add(gp, k, iconFS)
		}
	case scene.Mesh:
		sld := xyz.NewSolid(parent)
		sld.SetName(n.Name)
		sld.SetMesh(m.mesh(&n.Shape)).SetColor(n.Material.Color)
		if n.Material.Texture != "" && iconFS != nil {
			tx := xyz.NewTextureFileFS(iconFS, sc, n.Name, n.Material.Texture)
			sld.SetTexture(tx)
		}
		setPose(&sld.Pose, &n.Pose)
		sld.Invisible = !n.Visible
		if n == m.Scene.Icon {
			m.Icon = sld
		}
	}
}

// addLight creates the xyz light for a light node.
func (m *Mirror) addLight(n *scene.Node) {
	sc := m.XYZ
	switch n.Kind {
	case scene.AmbientLight:
		lt := xyz.NewAmbient(sc, n.Name, n.Light.Intensity, xyz.DirectSun)
		lt.Color = n.Light.Color
	case scene.DirectionalLight:
		lt := xyz.NewDirectional(sc, n.Name, n.Light.Intensity, xyz.DirectSun)
		lt.Color = n.Light.Color
		lt.Pos = n.WorldPos()
	case scene.SpotLight:
		m.spotIndex = numSpots(sc)
		lt := xyz.NewSpot(sc, n.Name, n.Light.Intensity, xyz.DirectSun)
		lt.Color = n.Light.Color
		lt.CutoffAngle = math32.RadToDeg(n.Light.Angle)
		m.Spot = lt
		m.sun = n
		m.aimSpot()
	}
}

// mesh returns the mesh for a shape, shared between nodes of equal shape.
func (m *Mirror) mesh(sh *scene.Shape) xyz.Mesh {
	sc := m.XYZ
	switch sh.Type {
	case scene.Cylinder:
		name := fmt.Sprintf("cylinder-%g-%g-%d", sh.Radius, sh.Height, sh.Segments)
		if ms, err := sc.MeshByName(name); err == nil {
			return ms
		}
		return xyz.NewCylinder(sc, name, sh.Height, sh.Radius, sh.Segments, 1, true, true)
	case scene.Box:
		name := fmt.Sprintf("box-%g-%g-%g", sh.Size.X, sh.Size.Y, sh.Size.Z)
		if ms, err := sc.MeshByName(name); err == nil {
			return ms
		}
		return xyz.NewBox(sc, name, sh.Size.X, sh.Size.Y, sh.Size.Z)
	}
	return nil
}

// Sync pushes the state of the scene graph into the xyz scene: group
// poses, the icon visibility, and the sun position and direction.
func (m *Mirror) Sync() {
	for _, gp := range m.groups {
		setPose(&gp.dst.Pose, &gp.src.Pose)
	}
	if m.Icon != nil && m.Scene.Icon != nil {
		m.Icon.Invisible = !m.Scene.Icon.IsVisible()
	}
	if m.Spot != nil {
		dir := m.sunDirection()
		if dir.Dot(m.sunDir) < math32.Cos(SyncAngle) {
			m.aimSpot()
			m.sunDir = dir
			m.LightUpdates++
			m.pushSpot()
		}
	}
	m.XYZ.SetNeedsUpdate()
}

// aimSpot places the spot light at the world position of the sun node,
// aimed at its target.
func (m *Mirror) aimSpot() {
	m.Spot.Pose.Pos = m.sun.WorldPos()
	m.Spot.LookAt(m.sun.Light.Target, math32.Vec3(0, 1, 0))
}

// pushSpot writes the spot light to the Phong light table, which is
// uploaded on the next render. Before the scene is live the light is
// picked up when the renderer is configured.
func (m *Mirror) pushSpot() {
	sc := m.XYZ
	if !sc.IsLive() {
		return
	}
	sl := m.Spot
	clr := math32.NewVector3Color(sl.Color).MulScalar(sl.Lumens).SRGBToLinear()
	sc.Phong.SetSpot(m.spotIndex, clr, sl.Pose.Pos, sl.ViewDir(), sl.AngDecay, sl.CutoffAngle, sl.LinDecay, sl.QuadDecay)
}

// numSpots returns the number of spot lights in sc.
func numSpots(sc *xyz.Scene) int {
	n := 0
	for _, kv := range sc.Lights.Order {
		if _, ok := kv.Value.(*xyz.Spot); ok {
			n++
		}
	}
	return n
}

// sunDirection returns the unit vector from the origin toward the sun.
func (m *Mirror) sunDirection() math32.Vector3 {
	if m.sun == nil {
		return math32.Vector3{}
	}
	return m.sun.WorldPos().Normal()
}

func setPose(dst *xyz.Pose, src *scene.Pose) {
	dst.Pos = src.Pos
	dst.Scale = src.Scale
	dst.Quat = src.Quat
}
