package scene

import (
	gomath "math"

	"github.com/Faultbox/vesselcad/internal/engine/geometry"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/internal/vessel/surface"
	"github.com/Faultbox/vesselcad/pkg/math"
)

const (
	shellSegments = 64
	domeRings     = 16
)

// Build is one assembled scene: the root node plus, per collection, the
// root node of every attachment for targeted ray-casting without walking
// the whole tree.
type Build struct {
	Root  *Node
	Shell []*Node

	Attachments [vessel.NumCollections][]*Node
}

// Walk visits every node of the build.
func (b *Build) Walk(fn func(*Node)) {
	b.Root.Walk(fn)
}

// orientationRotation carries the canonical frame (axis +X) into world
// space. For a vertical vessel that is the cyclic basis permutation
// x->y, y->z, z->x.
func orientationRotation(o vessel.Orientation) math.Quat {
	if o == vessel.Vertical {
		axis := math.Vec3{X: 1, Y: 1, Z: 1}.Normalize()
		return math.QuatFromAxisAngle(axis, 2*gomath.Pi/3)
	}
	return math.QuatIdentity()
}

// localZ is the canonical build axis every attachment mesh grows along.
var localZ = math.Vec3{Z: 1}

// Assemble builds the complete tagged scene for the given state and
// selection. It is a pure function of its inputs: assembling twice from an
// unchanged state yields identical transforms, tags and materials.
func Assemble(st *vessel.State, sel vessel.Selection) *Build {
	b := &Build{Root: NewNode("vessel")}

	shellMat := &Material{
		Name:      "shell",
		Diffuse:   st.Appearance.ShellColor,
		Metallic:  st.Appearance.Metallic,
		Wireframe: st.Appearance.Wireframe,
	}

	r := st.Radius()
	hd := st.HeadDepth()

	// The shell pieces are generated around the canonical +X axis and a
	// single rotation places them for either orientation.
	shellRoot := NewNode("shell")
	shellRoot.SetTransform(math.Vec3{}, orientationRotation(st.Orientation))
	b.Root.AddChild(shellRoot)

	barrel := NewNode("barrel")
	barrel.Mesh = geometry.CylinderX("barrel", r, st.Length, shellSegments)
	barrel.Material = shellMat
	shellRoot.AddChild(barrel)

	if hd > 0 {
		left := NewNode("head-left")
		left.Mesh = geometry.HeadDomeX("head-left", r, hd, -1, shellSegments, domeRings)
		left.Material = shellMat
		shellRoot.AddChild(left)

		right := NewNode("head-right")
		right.Mesh = geometry.HeadDomeX("head-right", r, hd, 1, shellSegments, domeRings).
			Translate(math.Vec3{X: st.Length})
		right.Material = shellMat
		shellRoot.AddChild(right)
	}
	b.Shell = shellRoot.Children

	for i, n := range st.Nozzles {
		node := BuildNozzle(n, i, pick(Steel(), sel.Is(vessel.Nozzles, i)))
		placeNozzle(st, n, node)
		b.Root.AddChild(node)
		b.Attachments[vessel.Nozzles] = append(b.Attachments[vessel.Nozzles], node)
	}

	for i, l := range st.Lugs {
		node := BuildLug(l, i, pick(Steel(), sel.Is(vessel.Lugs, i)))
		place(st, l.Pos, l.Angle, node)
		b.Root.AddChild(node)
		b.Attachments[vessel.Lugs] = append(b.Attachments[vessel.Lugs], node)
	}

	for i, s := range st.Saddles {
		mat := pick(&Material{Name: "saddle", Diffuse: s.Color, Metallic: 0.2}, sel.Is(vessel.Saddles, i))
		node := BuildSaddle(s, i, r, mat)
		place(st, s.Pos, vessel.SaddleAngle, node)
		b.Root.AddChild(node)
		b.Attachments[vessel.Saddles] = append(b.Attachments[vessel.Saddles], node)
	}

	for i, d := range st.Decals {
		node := BuildDecal(d, i, pick(DecalMaterial(d), sel.Is(vessel.Decals, i)))
		place(st, d.Pos, d.Angle, node)
		b.Root.AddChild(node)
		b.Attachments[vessel.Decals] = append(b.Attachments[vessel.Decals], node)
	}

	return b
}

// place translates an attachment to its surface contact point and rotates
// the canonical +Z build axis onto the surface normal with the minimal
// rotation between the two.
func place(st *vessel.State, pos, angle float64, node *Node) {
	point, normal := surface.Place(st, pos, angle)
	node.SetTransform(point, math.QuatBetween(localZ, normal))
}

// placeNozzle is place with the nozzle's orientation mode applied: a fixed
// world-axis mode replaces the surface normal, falling back to radial when
// the requested projection is degenerate at that location.
func placeNozzle(st *vessel.State, n vessel.Nozzle, node *Node) {
	point, _ := surface.Place(st, n.Pos, n.Angle)
	axis := surface.NozzleAxis(st, n)
	node.SetTransform(point, math.QuatBetween(localZ, axis))
}
