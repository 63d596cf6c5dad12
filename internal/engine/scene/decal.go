package scene

import (
	"fmt"

	"github.com/Faultbox/vesselcad/internal/engine/geometry"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// decalBaseSize is the edge length of a scale-1 decal in millimetres.
const decalBaseSize = 400.0

// decalLift keeps the decal quad just clear of the shell surface.
const decalLift = 2.0

// DecalMaterial returns the textured material for a decal.
func DecalMaterial(d vessel.Decal) *Material {
	return &Material{Name: "decal", Diffuse: [3]float64{1, 1, 1}, Texture: d.Image}
}

// BuildDecal builds the local mesh for one texture decal: a textured quad in
// the tangent plane, lifted slightly off the surface along +Z.
func BuildDecal(d vessel.Decal, index int, mat *Material) *Node {
	scale := d.Scale
	if scale <= 0 {
		scale = 1
	}
	size := decalBaseSize * scale

	root := NewNode(fmt.Sprintf("decal/%s", d.ID))
	root.Tag = &Tag{Collection: vessel.Decals, Index: index}

	quad := NewNode("patch")
	quad.Mesh = geometry.Quad("patch", size, size).Translate(math.Vec3{Z: decalLift})
	quad.Material = mat
	root.AddChild(quad)

	return root
}
