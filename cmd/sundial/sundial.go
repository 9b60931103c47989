// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sundial shows an animated 3D sundial, in a window
// or in the terminal.
package main

import (
	"context"

	"cogentcore.org/core/cli"
	"cogentcore.org/sundial"
	"cogentcore.org/sundial/sundialcore"
	"cogentcore.org/sundial/term"
)

//go:generate core generate -add-funcs

func main() { //types:skip
	opts := cli.DefaultOptions("sundial", "An animated 3D sundial whose sun circles the dial.")
	opts.DefaultFiles = []string{"sundial.toml"}
	cli.Run(opts, &sundial.Config{}, GUI, Term)
}

// GUI shows the sundial in a window.
func GUI(c *sundial.Config) error { //cli:cmd -root
	c.SetLogLevel()
	// the camera is placed again once the window has a size
	sd := sundial.New(c, 0, 0)
	c.StartWatch(context.Background(), sd.Params)
	sundialcore.Run(sd)
	return nil
}

// Term shows the sundial in the terminal.
func Term(c *sundial.Config) error {
	c.SetLogLevel()
	return term.Run(c)
}
