package scene

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/vesselcad/internal/engine/geometry"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// BuildLug builds the local mesh for one lifting lug, pad-eye or trunnion
// style, along +Z from the shell-contact origin.
func BuildLug(l vessel.Lug, index int, mat *Material) *Node {
	root := NewNode(fmt.Sprintf("lug/%s", l.Name))
	root.Tag = &Tag{Collection: vessel.Lugs, Index: index}

	dims := l.Dims()
	if l.Style == vessel.Trunnion {
		buildTrunnion(root, dims, mat)
	} else {
		buildPadEye(root, dims, mat)
	}
	return root
}

// buildPadEye: base disc bearing on the shell, rectangular riser plate, eye
// ring at the top as the shackle bearing surface, two triangular gussets
// bracing the plate.
func buildPadEye(root *Node, d vessel.LugDims, mat *Material) {
	base := NewNode("base")
	base.Mesh = geometry.Disc("base", d.BaseDia/2, d.BaseThk, stubSegments)
	base.Material = mat
	root.AddChild(base)

	plate := NewNode("plate")
	plate.Mesh = geometry.Box("plate", d.PlateWidth, d.PlateThk, d.PlateHeight).
		Translate(math.Vec3{Z: d.BaseThk + d.PlateHeight/2})
	plate.Material = mat
	root.AddChild(plate)

	// The eye's axis runs along local Y so the pin is horizontal across
	// the plate.
	eyeCenter := math.Vec3{Z: d.BaseThk + d.PlateHeight}
	eye := NewNode("eye")
	eye.Mesh = geometry.Washer("eye", d.EyeOuterDia/2, d.EyeHoleDia/2, d.PlateThk, stubSegments).
		Transform(math.QuatFromAxisAngle(math.Vec3{X: 1}, gomath.Pi/2).ToMat4()).
		Translate(eyeCenter.Add(math.Vec3{Y: d.PlateThk / 2}))
	eye.Material = mat
	root.AddChild(eye)

	// Gussets on both faces of the plate: right-angle legs along Y (out
	// from the plate) and Z (up the plate).
	gw := d.PlateWidth / 2
	gh := d.PlateHeight * 0.7
	gt := d.PlateThk * 0.6
	for side, sign := range []float64{1, -1} {
		g := NewNode(fmt.Sprintf("gusset%d", side+1))
		rot := math.QuatFromAxisAngle(math.Vec3{Z: 1}, sign*gomath.Pi/2)
		g.Mesh = geometry.Wedge("gusset", gw, gh, gt).
			Transform(rot.ToMat4()).
			Translate(math.Vec3{Y: sign * d.PlateThk / 2, Z: d.BaseThk})
		g.Material = mat
		root.AddChild(g)
	}
}

// buildTrunnion: base disc, tapered pipe stub, end cap, and a perpendicular
// cross-pin sleeve near the stub's top.
func buildTrunnion(root *Node, d vessel.LugDims, mat *Material) {
	base := NewNode("base")
	base.Mesh = geometry.Disc("base", d.BaseDia/2, d.BaseThk, stubSegments)
	base.Material = mat
	root.AddChild(base)

	stub := NewNode("stub")
	stub.Mesh = geometry.Tube("stub", d.StubDia/2, d.StubTipDia/2, d.StubLen, stubSegments, false, false).
		Translate(math.Vec3{Z: d.BaseThk})
	stub.Material = mat
	root.AddChild(stub)

	capThk := d.BaseThk * 0.8
	cap := NewNode("cap")
	cap.Mesh = geometry.Disc("cap", d.StubTipDia/2, capThk, stubSegments).
		Translate(math.Vec3{Z: d.BaseThk + d.StubLen})
	cap.Material = mat
	root.AddChild(cap)

	sleeve := NewNode("sleeve")
	sleeve.Mesh = geometry.Tube("sleeve", d.PinDia/2, d.PinDia/2, d.PinLen, stubSegments, true, true).
		Transform(math.QuatFromAxisAngle(math.Vec3{Y: 1}, gomath.Pi/2).ToMat4()).
		Translate(math.Vec3{X: -d.PinLen / 2, Z: d.BaseThk + d.StubLen - d.PinDia})
	sleeve.Material = mat
	root.AddChild(sleeve)
}
