// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sundial

import (
	"context"
	"log/slog"
	"math/rand"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/sundial/layout"
	"cogentcore.org/sundial/lights"
	"cogentcore.org/sundial/params"
)

// Config is the startup configuration of the sundial, set from
// command line flags and an optional sundial.toml file.
type Config struct {

	// Radius is the radius of the panel.
	Radius float32 `default:"15" min:"1"`

	// LightSpeed is the initial angular speed of the sun, in [0.1, 10].
	LightSpeed float32 `default:"0.1" min:"0.1" max:"10"`

	// Anticlockwise starts the sun moving anticlockwise instead of clockwise.
	Anticlockwise bool

	// HideIcon starts with the icon plaque hidden.
	HideIcon bool

	// Seed seeds the initial sun position. Zero means a different
	// position on every run.
	Seed int64

	// Watch is a toml file whose LightSpeed, Anticlockwise and HideIcon
	// values are applied whenever it changes. Empty disables watching.
	Watch string

	// FPS is the frame rate of the terminal view.
	FPS int `default:"60" min:"1"`

	// Verbose enables debug logging.
	Verbose bool `flag:"v,verbose"`
}

// Layout returns the scene parameters.
func (c *Config) Layout() layout.Params {
	p := layout.Params{Radius: c.Radius, ShowIcon: !c.HideIcon}
	p.Defaults()
	return p
}

// Direction returns the initial direction of the sun.
func (c *Config) Direction() params.Directions {
	if c.Anticlockwise {
		return params.AntiClockwise
	}
	return params.Clockwise
}

// Tunables returns new tunables holding the initial values.
func (c *Config) Tunables() *params.Tunables {
	speed := c.LightSpeed
	if speed == 0 {
		speed = params.DefaultLightSpeed
	}
	return params.New(speed, c.Direction(), !c.HideIcon)
}

// Rand returns the random source for the initial sun position,
// which is nil for the global source if Seed is zero.
func (c *Config) Rand() lights.Rand {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(c.Seed))
}

// SetLogLevel sets the default logger level from Verbose.
func (c *Config) SetLogLevel() {
	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		return
	}
	slog.SetLogLoggerLevel(slog.LevelInfo)
}

// StartWatch watches the Watch file for live parameter changes in the
// background, until ctx is done. It does nothing if Watch is empty.
func (c *Config) StartWatch(ctx context.Context, tp *params.Tunables) {
	if c.Watch == "" {
		return
	}
	go func() {
		err := Watch(ctx, c.Watch, tp)
		if ctx.Err() == nil {
			errors.Log(err)
		}
	}()
}
