// Package scene assembles the vessel shell and its attachments into a tagged
// node tree, and holds the per-kind attachment builders. Every attachment
// mesh is built in a local frame along +Z and placed by a rigid transform,
// so geometry and placement stay independent.
package scene

import (
	"github.com/Faultbox/vesselcad/internal/engine/geometry"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// Tag marks a node subtree as belonging to one attachment. Hit tests walk up
// from the hit leaf to the nearest tagged ancestor, so any constituent part
// resolves to its owning attachment without virtual dispatch.
type Tag struct {
	Collection vessel.Collection
	Index      int
}

// Node is one element of the scene graph.
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3

	Parent   *Node
	Children []*Node

	Mesh     *geometry.Mesh
	Material *Material
	Tag      *Tag

	// GPU handle owned by the renderer backend; nil until uploaded.
	GPU any

	worldDirty bool
	world      math.Mat4
}

// NewNode creates a node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:       name,
		Rotation:   math.QuatIdentity(),
		Scale:      math.Vec3{X: 1, Y: 1, Z: 1},
		worldDirty: true,
	}
}

// AddChild attaches child, reparenting it if needed.
func (n *Node) AddChild(child *Node) *Node {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	child.markDirty()
	n.Children = append(n.Children, child)
	return n
}

// RemoveChild detaches child from this node.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.markDirty()
			return
		}
	}
}

// SetTransform sets position and rotation in one step.
func (n *Node) SetTransform(pos math.Vec3, rot math.Quat) {
	n.Position = pos
	n.Rotation = rot
	n.markDirty()
}

func (n *Node) markDirty() {
	n.worldDirty = true
	for _, c := range n.Children {
		c.markDirty()
	}
}

// LocalMatrix returns the node's local transform.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.TRS(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix returns the cached world transform, recomputing when dirty.
func (n *Node) WorldMatrix() math.Mat4 {
	if n.worldDirty {
		local := n.LocalMatrix()
		if n.Parent != nil {
			n.world = n.Parent.WorldMatrix().Mul(local)
		} else {
			n.world = local
		}
		n.worldDirty = false
	}
	return n.world
}

// Owner walks up from this node to the nearest ancestor carrying a tag.
// Returns nil when no ancestor is tagged (e.g. the bare shell).
func (n *Node) Owner() *Tag {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Tag != nil {
			return cur.Tag
		}
	}
	return nil
}

// Walk visits the node and all descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
