// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sundialcore shows the sundial in a Cogent Core window, with
// the 3D scene rendered by xyz next to a panel of controls.
package sundialcore

import (
	"embed"
	"log/slog"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/system"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/sundial"
	"cogentcore.org/sundial/camera"
	"cogentcore.org/sundial/params"
)

//go:embed icon.png
var iconFS embed.FS

// Run opens a window showing sd and blocks until it is closed.
func Run(sd *sundial.Sundial) {
	b := core.NewBody("Sundial")
	sp := core.NewSplits(b)
	ctrl := core.NewFrame(sp)
	ctrl.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	NewControls(ctrl, sd.Params)

	se := xyzcore.NewSceneEditor(sp)
	se.UpdateWidget()
	sw := se.SceneWidget()
	sc := se.SceneXYZ()

	m := NewMirror(sc, sd.Scene, iconFS)
	ApplyCamera(sc, sd.Camera)
	sc.SaveCamera("default")

	sd.Loop.Render = func() {
		m.Sync()
		sw.NeedsRender()
	}
	placed := false
	sw.Animate(func(a *core.Animation) {
		// the camera is placed once, from the first known viewport size
		if !placed {
			sz := sw.Geom.Size.Actual.Content.ToPointFloor()
			if sz.X > 0 && sz.Y > 0 {
				sd.Place(sz.X, sz.Y)
				ApplyCamera(sc, sd.Camera)
				sc.SaveCamera("default")
				placed = true
			}
		}
		sd.Loop.Step(FrameDelta(a))
	})
	sp.SetSplits(.2, .8)
	slog.Debug("sundialcore: window ready")
	b.RunMainWindow()
}

// FrameDelta returns the time since the previous animation tick.
// [core.Animation.Dt] is in milliseconds.
func FrameDelta(a *core.Animation) time.Duration {
	return time.Duration(a.Dt * float32(time.Millisecond))
}

// ApplyCamera sets the xyz camera from cm. The aspect ratio is left to
// the scene widget, which sets it from its size.
func ApplyCamera(sc *xyz.Scene, cm *camera.Camera) {
	sc.Camera.FOV = cm.FOV
	sc.Camera.Near = cm.Near
	sc.Camera.Far = cm.Far
	sc.Camera.Pose.Pos = cm.Pos
	sc.Camera.LookAt(cm.Target, cm.UpDir)
}

// Controls are the widgets bound to the tunable parameters.
type Controls struct {
	Params    *params.Tunables
	Speed     *core.Slider
	Direction *core.Chooser
	ShowIcon  *core.Switch
	GitHub    *core.Button
}

// NewControls adds the parameter controls to parent. Every change is
// written to tp, which the update loop reads on its next frame.
func NewControls(parent tree.Node, tp *params.Tunables) *Controls {
	c := &Controls{Params: tp}

	core.NewText(parent).SetText("Speed")
	c.Speed = core.NewSlider(parent).SetMin(params.MinLightSpeed).SetMax(params.MaxLightSpeed).
		SetStep(params.SpeedStep)
	c.Speed.SetValue(tp.LightSpeed())
	c.Speed.SetTooltip("Angular speed of the sun")
	c.Speed.OnInput(func(e events.Event) {
		c.SetSpeed()
	})
	c.Speed.OnChange(func(e events.Event) {
		c.SetSpeed()
	})

	core.NewText(parent).SetText("Direction")
	c.Direction = core.NewChooser(parent).SetItems(
		core.ChooserItem{Value: params.Clockwise, Text: "Clockwise"},
		core.ChooserItem{Value: params.AntiClockwise, Text: "AntiClockwise"},
	)
	c.Direction.SetCurrentValue(tp.Direction())
	c.Direction.OnChange(func(e events.Event) {
		c.SetDirection()
	})

	c.ShowIcon = core.NewSwitch(parent).SetText("Show Icon")
	c.ShowIcon.SetChecked(tp.ShowIcon())
	c.ShowIcon.OnChange(func(e events.Event) {
		c.SetShowIcon()
	})

	c.GitHub = core.NewButton(parent).SetText("GitHub").SetIcon(icons.OpenInNew)
	c.GitHub.OnClick(func(e events.Event) {
		system.TheApp.OpenURL(params.ProjectURL)
	})
	return c
}

// SetSpeed copies the slider value to the light speed.
func (c *Controls) SetSpeed() {
	c.Params.SetLightSpeed(c.Speed.Value)
}

// SetDirection copies the chosen direction.
func (c *Controls) SetDirection() {
	if d, ok := c.Direction.CurrentItem.Value.(params.Directions); ok {
		c.Params.SetDirection(d)
	}
}

// SetShowIcon copies the switch state to the icon visibility.
func (c *Controls) SetShowIcon() {
	c.Params.SetShowIcon(c.ShowIcon.IsChecked())
}
