// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          math32.Vector3
	}{
		{"portrait", 600, 900, math32.Vec3(20, 70, 70)},
		{"square", 800, 800, math32.Vec3(20, 70, 70)},
		{"landscape", 1280, 720, math32.Vec3(15, 45, 50)},
		{"one wider", 801, 800, math32.Vec3(15, 45, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := Place(tt.width, tt.height)
			assert.Equal(t, tt.want, cm.Pos)
			assert.Equal(t, math32.Vec3(0, 10, 0), cm.Target)
			assert.Equal(t, float32(45), cm.FOV)
			assert.Equal(t, float32(1), cm.Near)
			assert.Equal(t, float32(1000), cm.Far)
			assert.InDelta(t, float32(tt.width)/float32(tt.height), cm.Aspect, 1e-6)
		})
	}
}

func TestResizeKeepsPosition(t *testing.T) {
	cm := Place(1280, 720)
	cm.Resize(400, 1000)
	assert.Equal(t, LandscapePos, cm.Pos)
	assert.InDelta(t, 0.4, cm.Aspect, 1e-6)
	assert.Equal(t, 400, cm.Width)
	assert.Equal(t, 1000, cm.Height)

	cm.Resize(400, 0)
	assert.InDelta(t, 0.4, cm.Aspect, 1e-6)
	assert.Equal(t, 0, cm.Height)
}

func TestPlaceEmpty(t *testing.T) {
	cm := Place(0, 0)
	assert.Equal(t, PortraitPos, cm.Pos)
	assert.Equal(t, float32(1), cm.Aspect)
}

func TestProject(t *testing.T) {
	cm := Place(1000, 500)
	view := cm.ViewMatrix()

	ndc, ok := cm.Project(view, cm.Target)
	assert.True(t, ok)
	assert.InDelta(t, 0, ndc.X, 1e-4)
	assert.InDelta(t, 0, ndc.Y, 1e-4)

	// above the target is up on screen
	ndc, ok = cm.Project(view, cm.Target.Add(math32.Vec3(0, 5, 0)))
	assert.True(t, ok)
	assert.Greater(t, ndc.Y, float32(0))

	// behind the camera
	behind := cm.Pos.Add(cm.Pos.Sub(cm.Target))
	_, ok = cm.Project(view, behind)
	assert.False(t, ok)
}
