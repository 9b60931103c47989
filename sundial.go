// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sundial assembles the animated sundial scene: a panel disc,
// a pole, twelve hour ticks, an icon plaque and a sun that circles
// the dial, and ties it to a camera and an update loop.
package sundial

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/sundial/anim"
	"cogentcore.org/sundial/camera"
	"cogentcore.org/sundial/layout"
	"cogentcore.org/sundial/lights"
	"cogentcore.org/sundial/params"
	"cogentcore.org/sundial/scene"
)

// Node names.
const (
	PanelName   = "panel"
	PoleName    = "pole"
	IconName    = "icon"
	AmbientName = "ambient"
	FillName    = "fill"
	KeyName     = "key"
	SpinnerName = "sun-container"
	SunName     = "sun"
	scalePrefix = "scale-"
)

// IconTexture is the name of the icon plaque image.
const IconTexture = "icon.png"

// ScaleName returns the name of tick i.
func ScaleName(i int) string {
	return fmt.Sprintf("%s%d", scalePrefix, i)
}

// Sundial is the application context: the scene built once at startup,
// the camera, the tunable parameters and the update loop that animates
// the scene. Frontends hold one and drive its Loop.
type Sundial struct {
	Layout layout.Params
	Scene  *scene.Scene
	Rig    *lights.Rig
	Camera *camera.Camera
	Params *params.Tunables
	Loop   *anim.Loop
}

// New builds the sundial for a viewport of the given size.
func New(cfg *Config, width, height int) *Sundial {
	sd := &Sundial{Layout: cfg.Layout()}
	sd.Scene, sd.Rig = Build(&sd.Layout, cfg.Rand())
	sd.Place(width, height)
	sd.Params = cfg.Tunables()
	sd.Loop = anim.NewLoop(sd.Scene.Spinner, sd.Scene.Icon, sd.Params)
	return sd
}

// Place replaces the camera with one placed for the given viewport size,
// for hosts that only learn their size after the sundial is created.
func (sd *Sundial) Place(width, height int) {
	sd.Camera = camera.Place(width, height)
	slog.Debug("sundial: camera placed", "pos", sd.Camera.Pos, "portrait", camera.IsPortrait(width, height))
}

// Resize updates the camera projection for a new viewport size.
// The camera position is not changed.
func (sd *Sundial) Resize(width, height int) {
	sd.Camera.Resize(width, height)
}

// Sun returns the spot light node that plays the sun.
func (sd *Sundial) Sun() *scene.Node {
	return sd.Scene.Spinner.ChildByName(SunName)
}

// Build assembles the scene graph from the layout and a new lighting rig
// whose container yaw is drawn from rnd. Every call returns an
// independent scene.
func Build(p *layout.Params, rnd lights.Rand) (*scene.Scene, *lights.Rig) {
	sc := scene.New()
	sc.Background = p.Background
	sc.Fog = scene.Fog{Color: p.Background, Density: p.FogDensity}
	root := sc.Root

	panel := newCylinder(root, PanelName, layout.Panel(p), p.Primary)
	panel.ReceiveShadow = true

	pole := newCylinder(root, PoleName, layout.Pole(p), p.Primary)
	pole.CastShadow = true

	icon := newBox(root, IconName, layout.Icon(p), p.Primary)
	icon.Material.Texture = IconTexture
	icon.Material.Transparent = true
	icon.ReceiveShadow = true
	icon.Visible = p.ShowIcon
	sc.Icon = icon

	tb := layout.TickBox(p)
	for _, pl := range layout.Ticks(p) {
		tick := newBox(root, ScaleName(pl.Index), tb, p.ScaleColor)
		tick.Pose.Pos = pl.Pos
		tick.Pose.Quat = pl.Quat
	}

	lr := lights.NewRig(p.Ambient, rnd)

	amb := scene.NewNode(root, AmbientName, scene.AmbientLight)
	amb.Light = scene.Light{Color: lr.Ambient.Color, Intensity: lr.Ambient.Intensity}

	for _, dl := range []struct {
		name string
		lt   lights.Directional
	}{{FillName, lr.Fill}, {KeyName, lr.Key}} {
		dn := scene.NewNode(root, dl.name, scene.DirectionalLight)
		dn.Pose.Pos = dl.lt.Pos
		dn.Light = scene.Light{Color: dl.lt.Color, Intensity: dl.lt.Intensity}
	}

	spin := scene.NewNode(root, SpinnerName, scene.Group)
	spin.Pose.SetAxisRotationRad(0, 1, 0, lr.Yaw)
	sc.Spinner = spin

	sun := scene.NewNode(spin, SunName, scene.SpotLight)
	sun.Pose.Pos = lr.Spot.Pos
	// the target is on the spin axis, so the aim holds as the container turns
	sun.Pose.LookAt(lr.Spot.Target, math32.Vec3(0, 1, 0))
	sun.Light = scene.Light{Color: lr.Spot.Color, Intensity: lr.Spot.Intensity, Angle: lr.Spot.Angle, Target: lr.Spot.Target}
	sun.CastShadow = lr.Spot.CastShadow

	slog.Debug("sundial: scene built", "nodes", sc.NumNodes(), "kinds", sc.CountKinds(), "yaw", lr.Yaw)
	return sc, lr
}

func newCylinder(parent *scene.Node, name string, cy layout.Cylinder, clr color.RGBA) *scene.Node {
	n := scene.NewNode(parent, name, scene.Mesh)
	n.Shape = scene.Shape{Type: scene.Cylinder, Radius: cy.Radius, Height: cy.Height, Segments: cy.Segments}
	n.Pose.Pos = cy.Pos
	n.Material.Color = clr
	return n
}

func newBox(parent *scene.Node, name string, bx layout.Box, clr color.RGBA) *scene.Node {
	n := scene.NewNode(parent, name, scene.Mesh)
	n.Shape = scene.Shape{Type: scene.Box, Size: bx.Size}
	n.Pose.Pos = bx.Pos
	if bx.Scale != (math32.Vector3{}) {
		n.Pose.Scale = bx.Scale
	}
	n.Material.Color = clr
	return n
}
