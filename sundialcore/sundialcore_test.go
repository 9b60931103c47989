// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sundialcore

import (
	"math/rand"
	"testing"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/sundial"
	"cogentcore.org/sundial/anim"
	"cogentcore.org/sundial/layout"
	"cogentcore.org/sundial/params"
	"github.com/stretchr/testify/assert"
)

func TestControls(t *testing.T) {
	b := core.NewBody()
	tp := params.New(1, params.Clockwise, true)
	c := NewControls(b, tp)

	assert.Equal(t, float32(1), c.Speed.Value)
	assert.Equal(t, params.MinLightSpeed, c.Speed.Min)
	assert.Equal(t, params.MaxLightSpeed, c.Speed.Max)
	assert.Equal(t, params.Clockwise, c.Direction.CurrentItem.Value)
	assert.True(t, c.ShowIcon.IsChecked())
	assert.Equal(t, "GitHub", c.GitHub.Text)

	c.Speed.SetValue(2.5)
	c.SetSpeed()
	assert.InDelta(t, 2.5, tp.LightSpeed(), 1e-6)

	c.Direction.SetCurrentValue(params.AntiClockwise)
	c.SetDirection()
	assert.Equal(t, params.AntiClockwise, tp.Direction())

	c.ShowIcon.SetChecked(false)
	c.SetShowIcon()
	assert.False(t, tp.ShowIcon())
}

func TestControlsNextFrame(t *testing.T) {
	p := layout.DefaultParams(15)
	src, _ := sundial.Build(&p, rand.New(rand.NewSource(5)))
	tp := params.New(1, params.AntiClockwise, true)
	lp := anim.NewLoop(src.Spinner, src.Icon, tp)
	c := NewControls(core.NewBody(), tp)

	c.ShowIcon.SetChecked(false)
	c.SetShowIcon()
	c.Direction.SetCurrentValue(params.Clockwise)
	c.SetDirection()
	c.Speed.SetValue(2)
	c.SetSpeed()

	lp.Step(100 * time.Millisecond)
	assert.False(t, src.Icon.IsVisible())
	assert.InDelta(t, -0.2, lp.Theta, 1e-5)
}

func TestFrameDelta(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, FrameDelta(&core.Animation{Dt: 50}))
	assert.Equal(t, time.Duration(0), FrameDelta(&core.Animation{}))
}
