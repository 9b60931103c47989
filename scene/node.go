// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Kinds are the kinds of nodes in a [Scene].
type Kinds int32

const (
	// Group is a container that only carries a transform.
	Group Kinds = iota

	// Mesh is a solid with a [Shape] and a [Material].
	Mesh

	// AmbientLight is uniform light with no position.
	AmbientLight

	// DirectionalLight shines from its position toward the origin.
	DirectionalLight

	// SpotLight is a cone of light from its position toward [Light.Target].
	SpotLight
)

var kindNames = [...]string{"Group", "Mesh", "AmbientLight", "DirectionalLight", "SpotLight"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kinds(?)"
	}
	return kindNames[k]
}

// IsLight returns whether the kind is one of the light kinds.
func (k Kinds) IsLight() bool {
	return k >= AmbientLight
}

// Shapes are the mesh primitives used by the sundial.
type Shapes int32

const (
	NoShape Shapes = iota
	Cylinder
	Box
)

// Shape is the geometry of a [Mesh] node, in local coordinates,
// centered on the node position.
type Shape struct {
	Type Shapes

	// Radius of a Cylinder.
	Radius float32

	// Height of a Cylinder.
	Height float32

	// Size of a Box (width, height, depth).
	Size math32.Vector3

	// Segments is the number of radial segments of a Cylinder.
	Segments int
}

// Material is the surface of a [Mesh] node.
type Material struct {
	Color color.RGBA

	// Texture is the name of an externally loaded image, if any.
	Texture string

	Transparent bool
}

// Light holds the parameters of light nodes.
type Light struct {
	Color color.RGBA

	// Intensity multiplies Color.
	Intensity float32

	// Angle is the cone half angle of a SpotLight, in radians.
	Angle float32

	// Target is the world point a SpotLight is aimed at.
	Target math32.Vector3
}

// Node is one element of the scene tree. Each node is owned by its parent's
// Children; the parent link is a plain back reference.
type Node struct {
	Name string
	Kind Kinds

	// Pose is the transform relative to the parent.
	Pose Pose

	// Visible is whether the node and its children are rendered.
	Visible bool

	Shape    Shape
	Material Material
	Light    Light

	CastShadow    bool
	ReceiveShadow bool

	Children []*Node

	parent *Node
}

// NewNode returns a new visible node with a default pose,
// added as the last child of parent if parent is non-nil.
func NewNode(parent *Node, name string, kind Kinds) *Node {
	n := &Node{Name: name, Kind: kind, Visible: true}
	n.Pose.Defaults()
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

// AddChild appends c to the children of n, detaching it from any previous parent.
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.parent.DeleteChild(c)
	}
	c.parent = n
	n.Children = append(n.Children, c)
}

// DeleteChild removes c from the children of n, returning false if
// it was not a child.
func (n *Node) DeleteChild(c *Node) bool {
	for i, k := range n.Children {
		if k == c {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildByName returns the first direct child with the given name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, k := range n.Children {
		if k.Name == name {
			return k
		}
	}
	return nil
}

// WalkDown calls fun on n and then on all of its descendants in depth-first
// order. If fun returns false the children of that node are skipped.
func (n *Node) WalkDown(fun func(k *Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.Children {
		k.WalkDown(fun)
	}
}

// FindNode returns the first node named name in the subtree rooted at n.
func (n *Node) FindNode(name string) *Node {
	var found *Node
	n.WalkDown(func(k *Node) bool {
		if found != nil {
			return false
		}
		if k.Name == name {
			found = k
			return false
		}
		return true
	})
	return found
}

// WorldMatrix returns the transform from local coordinates of n to the
// root, composed from the ancestor chain.
func (n *Node) WorldMatrix() math32.Matrix4 {
	lm := n.Pose.Matrix()
	if n.parent == nil {
		return lm
	}
	pm := n.parent.WorldMatrix()
	var wm math32.Matrix4
	wm.MulMatrices(&pm, &lm)
	return wm
}

// WorldPos returns the position of n in root coordinates.
func (n *Node) WorldPos() math32.Vector3 {
	wm := n.WorldMatrix()
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&wm)
	return pos
}

// IsVisible returns whether n and all of its ancestors are visible.
func (n *Node) IsVisible() bool {
	for k := n; k != nil; k = k.parent {
		if !k.Visible {
			return false
		}
	}
	return true
}
