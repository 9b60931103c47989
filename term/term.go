// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term is a full screen terminal view of the sundial. It projects
// the scene graph through the sundial camera onto character cells.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"sync/atomic"

	"cogentcore.org/core/math32"
	"cogentcore.org/sundial"
	"cogentcore.org/sundial/anim"
	"cogentcore.org/sundial/params"
	"cogentcore.org/sundial/scene"
	"github.com/gdamore/tcell/v2"
)

// CellAspect is the height of a character cell relative to its width.
const CellAspect = 2

// rimSamples is the number of points drawn around the panel rim.
const rimSamples = 180

// View draws a [sundial.Sundial] on a tcell screen.
type View struct {
	Sundial *sundial.Sundial
	Screen  tcell.Screen

	// Width and Height are the screen size in cells.
	Width, Height int

	resized atomic.Bool
	cancel  context.CancelFunc
}

// NewView returns a view of sd on screen, sized to the screen.
func NewView(sd *sundial.Sundial, screen tcell.Screen) *View {
	v := &View{Sundial: sd, Screen: screen}
	v.Resize()
	return v
}

// ViewportSize returns the viewport size in square units for a screen of
// the given size in cells.
func ViewportSize(cols, rows int) (int, int) {
	return cols, rows * CellAspect
}

// Resize reads the screen size and updates the camera projection.
func (v *View) Resize() {
	v.Width, v.Height = v.Screen.Size()
	v.Sundial.Resize(ViewportSize(v.Width, v.Height))
}

// HandleEvent applies one screen event, returning false if the view
// should quit. Parameter changes are written to the tunables directly;
// a resize is deferred to the next frame.
func (v *View) HandleEvent(ev tcell.Event) bool {
	tp := v.Sundial.Params
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			tp.AddLightSpeed(params.SpeedStep)
		case tcell.KeyLeft:
			tp.AddLightSpeed(-params.SpeedStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case '+', '=':
				tp.AddLightSpeed(params.SpeedStep)
			case '-', '_':
				tp.AddLightSpeed(-params.SpeedStep)
			case 'd', 'D':
				tp.ToggleDirection()
			case 'i', 'I':
				tp.ToggleIcon()
			}
		}
	case *tcell.EventResize:
		v.resized.Store(true)
	}
	return true
}

// Frame applies any pending resize, runs one loop frame, and draws.
func (v *View) Frame() {
	if v.resized.Swap(false) {
		v.Resize()
		v.Screen.Sync()
	}
	v.Sundial.Loop.Frame()
}

// Draw renders the current state of the scene to the screen.
func (v *View) Draw() {
	sd := v.Sundial
	sc := sd.Scene
	p := &sd.Layout
	view := sd.Camera.ViewMatrix()
	cv := &canvas{v: v, view: view}

	bg := tcell.StyleDefault.Background(tcellColor(sc.Background))
	v.Screen.Fill(' ', bg)

	top := float32(0.5) // panel top surface
	rim := bg.Foreground(tcellColor(darken(p.Primary, 0.55)))
	var prev [2]int
	for i := 0; i <= rimSamples; i++ {
		a := float32(i) * 2 * math32.Pi / rimSamples
		x, y, ok := cv.cell(math32.Vec3(p.Radius*math32.Cos(a), top, p.Radius*math32.Sin(a)))
		if ok && i > 0 {
			cv.line(prev[0], prev[1], x, y, '·', rim)
		}
		prev = [2]int{x, y}
	}

	if sc.Icon != nil && sc.Icon.IsVisible() {
		cv.outline(sc.Icon, '+', bg.Foreground(tcellColor(darken(p.Primary, 0.4))))
	}

	sun := sd.Sun()
	sunPos := sun.WorldPos()
	poleTop := math32.Vec3(0, 16, 0)
	if tip, ok := ShadowTip(sunPos, poleTop, top); ok {
		tip = ClipToRadius(tip, p.Radius)
		cv.segment(math32.Vec3(0, top, 0), tip, '▒', bg.Foreground(tcellColor(darken(p.Background, 0.6))))
	}

	tick := bg.Foreground(tcellColor(p.ScaleColor))
	for i := range p.NumTicks {
		if n := sc.FindNode(sundial.ScaleName(i)); n != nil {
			cv.point(n.WorldPos(), '■', tick)
		}
	}

	pole := bg.Foreground(tcellColor(darken(p.Primary, 0.3)))
	cv.segment(math32.Vec3(0, top, 0), poleTop, '█', pole)

	cv.point(sunPos, '☼', bg.Foreground(tcell.ColorYellow).Bold(true))

	v.drawStatus()
	v.Screen.Show()
}

func (v *View) drawStatus() {
	sn := v.Sundial.Params.Snapshot()
	icon := "on"
	if !sn.ShowIcon {
		icon = "off"
	}
	status := fmt.Sprintf(" speed %.1f  %s  icon %s  |  +/- speed  d direction  i icon  q quit", sn.LightSpeed, sn.Direction, icon)
	st := tcell.StyleDefault.Reverse(true)
	y := v.Height - 1
	for x := range v.Width {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		v.Screen.SetContent(x, y, r, nil, st)
	}
}

// Run runs the view until ctx is done or the user quits. The screen
// must already be initialized, and is left for the caller to finalize.
func (v *View) Run(ctx context.Context, fps int) error {
	ctx, v.cancel = context.WithCancel(ctx)
	defer v.cancel()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.Screen.ChannelEvents(events, quit)
	go func() {
		for ev := range events {
			if !v.HandleEvent(ev) {
				v.cancel()
			}
		}
	}()
	defer close(quit)

	v.Sundial.Loop.Render = v.Draw
	v.Sundial.Loop.Start()
	err := anim.Run(ctx, anim.FrameInterval(fps), v.Frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Run opens the terminal and shows the sundial configured by cfg
// until the user quits.
func Run(cfg *sundial.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// log output would be drawn over the screen
	logger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer slog.SetDefault(logger)

	w, h := ViewportSize(screen.Size())
	sd := sundial.New(cfg, w, h)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg.StartWatch(ctx, sd.Params)
	return NewView(sd, screen).Run(ctx, cfg.FPS)
}

// ShadowTip returns where the shadow of the point top, lit by a point
// light at sun, falls on the horizontal plane at height y. It returns
// false if the light is not above top.
func ShadowTip(sun, top math32.Vector3, y float32) (math32.Vector3, bool) {
	if sun.Y <= top.Y {
		return math32.Vector3{}, false
	}
	t := (sun.Y - y) / (sun.Y - top.Y)
	return sun.Add(top.Sub(sun).MulScalar(t)), true
}

// ClipToRadius pulls p horizontally back onto the circle of radius r
// around the vertical axis if it lies outside it.
func ClipToRadius(p math32.Vector3, r float32) math32.Vector3 {
	d := math32.Sqrt(p.X*p.X + p.Z*p.Z)
	if d <= r {
		return p
	}
	s := r / d
	return math32.Vec3(p.X*s, p.Y, p.Z*s)
}

// canvas maps world points to cells of the view.
type canvas struct {
	v    *View
	view *math32.Matrix4
}

// cell returns the cell of a world point, which may be off screen.
func (cv *canvas) cell(world math32.Vector3) (int, int, bool) {
	ndc, ok := cv.v.Sundial.Camera.Project(cv.view, world)
	if !ok {
		return 0, 0, false
	}
	x := int(math32.Floor((ndc.X + 1) / 2 * float32(cv.v.Width)))
	y := int(math32.Floor((1 - ndc.Y) / 2 * float32(cv.v.Height)))
	return x, y, true
}

// set draws r at x, y if on screen, leaving the status line alone.
func (cv *canvas) set(x, y int, r rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= cv.v.Width || y >= cv.v.Height-1 {
		return
	}
	cv.v.Screen.SetContent(x, y, r, nil, st)
}

func (cv *canvas) point(world math32.Vector3, r rune, st tcell.Style) {
	if x, y, ok := cv.cell(world); ok {
		cv.set(x, y, r, st)
	}
}

func (cv *canvas) segment(a, b math32.Vector3, r rune, st tcell.Style) {
	x0, y0, ok0 := cv.cell(a)
	x1, y1, ok1 := cv.cell(b)
	if ok0 && ok1 {
		cv.line(x0, y0, x1, y1, r, st)
	}
}

func (cv *canvas) line(x0, y0, x1, y1 int, r rune, st tcell.Style) {
	dx, dy := x1-x0, y1-y0
	n := max(abs(dx), abs(dy))
	if n == 0 {
		cv.set(x0, y0, r, st)
		return
	}
	for i := 0; i <= n; i++ {
		x := x0 + (dx*i+sign(dx)*n/2)/n
		y := y0 + (dy*i+sign(dy)*n/2)/n
		cv.set(x, y, r, st)
	}
}

// outline draws the edges of the top face of a box node.
func (cv *canvas) outline(n *scene.Node, r rune, st tcell.Style) {
	wm := n.WorldMatrix()
	hs := n.Shape.Size.MulScalar(0.5)
	corners := [4]math32.Vector3{
		math32.Vec3(-hs.X, hs.Y, -hs.Z),
		math32.Vec3(hs.X, hs.Y, -hs.Z),
		math32.Vec3(hs.X, hs.Y, hs.Z),
		math32.Vec3(-hs.X, hs.Y, hs.Z),
	}
	for i := range corners {
		corners[i] = corners[i].MulMatrix4(&wm)
	}
	for i := range corners {
		cv.segment(corners[i], corners[(i+1)%len(corners)], r, st)
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// darken scales the color channels by f.
func darken(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{uint8(float32(c.R) * f), uint8(float32(c.G) * f), uint8(float32(c.B) * f), c.A}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
