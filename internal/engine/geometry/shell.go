package geometry

import (
	gomath "math"

	"github.com/Faultbox/vesselcad/pkg/math"
)

// The shell pieces are generated in the canonical vessel frame: axis along
// +X, circumferential angle 0 along +Z and 90 along +Y, tangent line at x=0.

// CylinderX generates the open cylindrical shell from x=0 to x=length.
func CylinderX(name string, radius, length float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := NewMesh(name)

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(segments)
		sin, cos := gomath.Sincos(theta)
		n := math.Vec3{Y: sin, Z: cos}
		u := float64(i) / float64(segments)
		m.Vertices = append(m.Vertices,
			Vertex{Position: math.Vec3{Y: sin * radius, Z: cos * radius}, Normal: n, UV: math.Vec2{X: u}},
			Vertex{Position: math.Vec3{X: length, Y: sin * radius, Z: cos * radius}, Normal: n, UV: math.Vec2{X: u, Y: 1}},
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		m.quad(base, base+2, base+3, base+1)
	}
	return m
}

// HeadDomeX generates one hemi-ellipsoidal head cap. sign -1 grows the dome
// toward -X from the tangent ring at x=0; sign +1 toward +X. The caller
// translates the +X dome to the far tangent line. Normals follow the
// ellipsoid gradient so they blend smoothly into the cylinder at the seam.
func HeadDomeX(name string, radius, depth float64, sign int, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	m := NewMesh(name)
	s := float64(sign)

	for j := 0; j <= rings; j++ {
		a := s * depth * float64(j) / float64(rings)
		radicand := 1 - (a/depth)*(a/depth)
		if radicand < 0 {
			radicand = 0
		}
		rLocal := radius * gomath.Sqrt(radicand)

		for i := 0; i <= segments; i++ {
			theta := float64(i) * 2 * gomath.Pi / float64(segments)
			sin, cos := gomath.Sincos(theta)

			var n math.Vec3
			if j == rings {
				n = math.Vec3{X: s}
			} else {
				n = math.Vec3{
					X: a / (depth * depth),
					Y: sin * rLocal / (radius * radius),
					Z: cos * rLocal / (radius * radius),
				}.Normalize()
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: math.Vec3{X: a, Y: sin * rLocal, Z: cos * rLocal},
				Normal:   n,
				UV:       math.Vec2{X: float64(i) / float64(segments), Y: float64(j) / float64(rings)},
			})
		}
	}
	stride := uint32(segments + 1)
	for j := 0; j < rings; j++ {
		for i := 0; i < segments; i++ {
			cur := uint32(j)*stride + uint32(i)
			next := cur + stride
			if sign > 0 {
				m.quad(cur, next, next+1, cur+1)
			} else {
				m.quad(cur, cur+1, next+1, next)
			}
		}
	}
	return m
}

// ArcPlate generates a curved plate hugging the shell exterior, used for the
// saddle cradle. It is built in the attachment local frame: the contact
// point is the origin, +Z points outward, the vessel axis runs along local
// X and the shell center sits at (0,0,-shellRadius). The plate spans arcDeg
// degrees centered on the contact point.
func ArcPlate(name string, shellRadius, axialWidth, thickness, arcDeg float64, segments int) *Mesh {
	if segments < 2 {
		segments = 2
	}
	m := NewMesh(name)

	halfArc := arcDeg * gomath.Pi / 360 // half arc in radians
	hw := axialWidth / 2
	center := math.Vec3{Z: -shellRadius}

	point := func(phi, rho, x float64) math.Vec3 {
		sin, cos := gomath.Sincos(phi)
		return center.Add(math.Vec3{X: x, Y: sin * rho, Z: cos * rho})
	}

	// Inner and outer curved faces.
	for _, face := range []struct {
		rho  float64
		flip bool
	}{{shellRadius, true}, {shellRadius + thickness, false}} {
		start := uint32(len(m.Vertices))
		for i := 0; i <= segments; i++ {
			phi := -halfArc + 2*halfArc*float64(i)/float64(segments)
			sin, cos := gomath.Sincos(phi)
			n := math.Vec3{Y: sin, Z: cos}
			if face.flip {
				n = n.Neg()
			}
			m.Vertices = append(m.Vertices,
				Vertex{Position: point(phi, face.rho, -hw), Normal: n},
				Vertex{Position: point(phi, face.rho, hw), Normal: n},
			)
		}
		for i := 0; i < segments; i++ {
			base := start + uint32(i*2)
			if face.flip {
				m.quad(base, base+1, base+3, base+2)
			} else {
				m.quad(base, base+2, base+3, base+1)
			}
		}
	}

	// End walls at the arc extremes.
	for _, phi := range []float64{-halfArc, halfArc} {
		base := uint32(len(m.Vertices))
		sin, cos := gomath.Sincos(phi)
		n := math.Vec3{Y: cos, Z: -sin}
		if phi < 0 {
			n = n.Neg()
		}
		m.Vertices = append(m.Vertices,
			Vertex{Position: point(phi, shellRadius, -hw), Normal: n},
			Vertex{Position: point(phi, shellRadius, hw), Normal: n},
			Vertex{Position: point(phi, shellRadius+thickness, hw), Normal: n},
			Vertex{Position: point(phi, shellRadius+thickness, -hw), Normal: n},
		)
		m.quad(base, base+1, base+2, base+3)
	}
	return m
}
