package scene

import (
	"fmt"

	"github.com/Faultbox/vesselcad/internal/engine/geometry"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

const saddleArcDeg = 120.0

// BuildSaddle builds the local mesh for one support saddle: a curved cradle
// plate hugging the shell, two transverse rib plates, and a base plate. In
// the local frame +Z points outward from the shell, i.e. downward once the
// saddle is placed at the vessel's bottom angle.
func BuildSaddle(s vessel.Saddle, index int, shellRadius float64, mat *Material) *Node {
	root := NewNode(fmt.Sprintf("saddle/%s", s.Tag))
	root.Tag = &Tag{Collection: vessel.Saddles, Index: index}

	width := shellRadius * 0.4    // axial
	breadth := shellRadius * 1.4  // transverse
	height := shellRadius * 0.35  // stand-off from shell bottom to base
	plateThk := shellRadius * 0.02

	cradle := NewNode("cradle")
	cradle.Mesh = geometry.ArcPlate("cradle", shellRadius, width, plateThk, saddleArcDeg, 24)
	cradle.Material = mat
	root.AddChild(cradle)

	for i, x := range []float64{-width/2 + plateThk, width/2 - plateThk} {
		rib := NewNode(fmt.Sprintf("rib%d", i+1))
		rib.Mesh = geometry.Box("rib", plateThk*2, breadth, height).
			Translate(math.Vec3{X: x, Z: height / 2})
		rib.Material = mat
		root.AddChild(rib)
	}

	base := NewNode("base")
	base.Mesh = geometry.Box("base", width, breadth, plateThk*2).
		Translate(math.Vec3{Z: height})
	base.Material = mat
	root.AddChild(base)

	return root
}
