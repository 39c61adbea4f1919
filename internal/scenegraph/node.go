// Package scenegraph is the transform-node tree the creature builders assemble
// into. A node owns its children exclusively; builders receive a borrowed parent
// and create sub-trees under it. Construction is fluent (At/Rotated/Scaled/Shaded)
// so each limb step reads as one declarative chain.
package scenegraph

import (
	"monsterforge/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a local transform with an optional attached solid and material color.
// Position/Rotation/Scale are relative to the parent; Rotation is Euler radians
// applied X, then Y, then Z. Scale is non-uniform and defaults to (1,1,1).
type Node struct {
	Name     string
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
	Solid    *primitives.Solid
	Color    rl.Color

	parent   *Node
	children []*Node
}

// NewRoot returns a detached node to build a tree under.
func NewRoot(name string) *Node {
	return &Node{Name: name, Scale: rl.NewVector3(1, 1, 1)}
}

// Child creates a new empty node under n and returns it.
func (n *Node) Child(name string) *Node {
	c := &Node{Name: name, Scale: rl.NewVector3(1, 1, 1), parent: n}
	n.children = append(n.children, c)
	return c
}

// WithSolid attaches a solid to n. The solid is copied; later edits to the
// caller's value do not reach the node.
func (n *Node) WithSolid(s primitives.Solid) *Node {
	n.Solid = &s
	return n
}

// At sets the local position.
func (n *Node) At(x, y, z float32) *Node {
	n.Position = rl.NewVector3(x, y, z)
	return n
}

// Rotated sets the local Euler rotation in radians.
func (n *Node) Rotated(x, y, z float32) *Node {
	n.Rotation = rl.NewVector3(x, y, z)
	return n
}

// Scaled sets the local non-uniform scale.
func (n *Node) Scaled(x, y, z float32) *Node {
	n.Scale = rl.NewVector3(x, y, z)
	return n
}

// Shaded sets the material color used when the node's solid is drawn.
func (n *Node) Shaded(c rl.Color) *Node {
	n.Color = c
	return n
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's direct children in creation order. The returned
// slice is the node's own; callers must not append to it.
func (n *Node) Children() []*Node {
	return n.children
}

// Detach removes n from its parent. Used by the preview to respawn a gallery.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	kids := n.parent.children
	for i, c := range kids {
		if c == n {
			n.parent.children = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Find returns the first node named name in a pre-order walk of n's subtree
// (including n), or nil. This backs the named-attachment contract: equipment code
// locates a limb's "Hand" node by name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for every node in n's subtree in pre-order, passing each node's
// accumulated world transform. The renderer and tests are the only walkers.
func (n *Node) Walk(fn func(*Node, rl.Matrix)) {
	n.walk(rl.MatrixIdentity(), fn)
}

func (n *Node) walk(parentWorld rl.Matrix, fn func(*Node, rl.Matrix)) {
	world := rl.MatrixMultiply(n.localMatrix(), parentWorld)
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// localMatrix composes scale, rotation, translation in that order.
func (n *Node) localMatrix() rl.Matrix {
	m := rl.MatrixScale(n.Scale.X, n.Scale.Y, n.Scale.Z)
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(n.Rotation))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(n.Position.X, n.Position.Y, n.Position.Z))
}

// Count returns the number of nodes in n's subtree, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// SolidCount returns how many nodes in n's subtree carry a solid.
func (n *Node) SolidCount() int {
	total := 0
	if n.Solid != nil {
		total++
	}
	for _, c := range n.children {
		total += c.SolidCount()
	}
	return total
}
