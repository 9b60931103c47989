// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a renderer-independent scene graph: a tree of
// nodes with parent-relative poses, from which world transforms are
// computed on demand.
package scene

import (
	"image/color"
)

// Fog is exponential squared distance fog.
type Fog struct {
	Color   color.RGBA
	Density float32
}

// Scene is a rooted tree of nodes plus the scene-wide settings.
type Scene struct {
	Root *Node

	Background color.RGBA
	Fog        Fog

	// Spinner is the rotating light container, the only node whose
	// pose changes after the scene is built.
	Spinner *Node

	// Icon is the optional icon plaque, whose visibility is toggled per frame.
	Icon *Node
}

// New returns a new scene with an empty root group.
func New() *Scene {
	return &Scene{Root: NewNode(nil, "root", Group)}
}

// FindNode returns the first node with the given name, or nil.
func (sc *Scene) FindNode(name string) *Node {
	return sc.Root.FindNode(name)
}

// NumNodes returns the total number of nodes, including the root.
func (sc *Scene) NumNodes() int {
	n := 0
	sc.Root.WalkDown(func(k *Node) bool {
		n++
		return true
	})
	return n
}

// CountKinds returns the number of nodes of each kind.
func (sc *Scene) CountKinds() map[Kinds]int {
	counts := map[Kinds]int{}
	sc.Root.WalkDown(func(k *Node) bool {
		counts[k.Kind]++
		return true
	})
	return counts
}

// Lights returns all light nodes in depth-first order.
func (sc *Scene) Lights() []*Node {
	var lts []*Node
	sc.Root.WalkDown(func(k *Node) bool {
		if k.Kind.IsLight() {
			lts = append(lts, k)
		}
		return true
	})
	return lts
}
