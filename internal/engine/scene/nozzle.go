package scene

import (
	"fmt"

	"github.com/Faultbox/vesselcad/internal/engine/geometry"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

const stubSegments = 24

// BuildNozzle builds the local mesh for one nozzle: a cylindrical stub along
// +Z from the shell-contact origin, with a flange disc at the outboard end
// when the projection leaves room for one.
func BuildNozzle(n vessel.Nozzle, index int, mat *Material) *Node {
	dims := n.Dims()
	projection := n.Projection
	if projection <= 0 {
		projection = dims.OuterDia * 1.5
	}

	root := NewNode(fmt.Sprintf("nozzle/%s", n.Name))
	root.Tag = &Tag{Collection: vessel.Nozzles, Index: index}

	stub := NewNode("stub")
	stub.Mesh = geometry.Tube("stub", dims.OuterDia/2, dims.OuterDia/2, projection, stubSegments, false, true)
	stub.Material = mat
	root.AddChild(stub)

	if projection > 2*dims.FlangeThk {
		flange := NewNode("flange")
		flange.Mesh = geometry.Disc("flange", dims.FlangeDia/2, dims.FlangeThk, stubSegments).
			Translate(math.Vec3{Z: projection - dims.FlangeThk})
		flange.Material = mat
		root.AddChild(flange)
	}
	return root
}
