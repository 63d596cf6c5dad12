package geometry

import (
	gomath "math"

	"github.com/Faultbox/vesselcad/pkg/math"
)

// Tube generates a tube along +Z from z=0 to z=length, linearly tapered
// from rBottom to rTop. Caps are optional fans.
func Tube(name string, rBottom, rTop, length float64, segments int, capBottom, capTop bool) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := NewMesh(name)

	slope := (rBottom - rTop) / length
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(segments)
		sin, cos := gomath.Sincos(theta)
		n := math.Vec3{X: cos, Y: sin, Z: slope}.Normalize()
		u := float64(i) / float64(segments)

		m.Vertices = append(m.Vertices,
			Vertex{
				Position: math.Vec3{X: cos * rBottom, Y: sin * rBottom},
				Normal:   n,
				UV:       math.Vec2{X: u},
			},
			Vertex{
				Position: math.Vec3{X: cos * rTop, Y: sin * rTop, Z: length},
				Normal:   n,
				UV:       math.Vec2{X: u, Y: 1},
			},
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		m.quad(base, base+2, base+3, base+1)
	}

	if capBottom {
		m.fan(rBottom, 0, math.Vec3{Z: -1}, segments)
	}
	if capTop {
		m.fan(rTop, length, math.Vec3{Z: 1}, segments)
	}
	return m
}

// fan appends a filled circle at height z facing along normal.
func (m *Mesh) fan(radius, z float64, normal math.Vec3, segments int) {
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{
		Position: math.Vec3{Z: z},
		Normal:   normal,
		UV:       math.Vec2{X: 0.5, Y: 0.5},
	})
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(segments)
		sin, cos := gomath.Sincos(theta)
		m.Vertices = append(m.Vertices, Vertex{
			Position: math.Vec3{X: cos * radius, Y: sin * radius, Z: z},
			Normal:   normal,
			UV:       math.Vec2{X: 0.5 + cos/2, Y: 0.5 + sin/2},
		})
	}
	for i := 0; i < segments; i++ {
		m.tri(center, center+1+uint32(i), center+2+uint32(i))
	}
}

// Disc generates a solid squat cylinder along +Z from z=0 to z=thickness.
func Disc(name string, radius, thickness float64, segments int) *Mesh {
	return Tube(name, radius, radius, thickness, segments, true, true)
}

// Washer generates an annular ring along +Z from z=0 to z=thickness with a
// through hole, e.g. the bearing eye of a pad-eye lug.
func Washer(name string, outer, inner, thickness float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := NewMesh(name)

	// Vertex layout per spoke: outer-bottom, outer-top, inner-bottom,
	// inner-top.
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(segments)
		sin, cos := gomath.Sincos(theta)
		out := math.Vec3{X: cos, Y: sin}
		m.Vertices = append(m.Vertices,
			Vertex{Position: math.Vec3{X: cos * outer, Y: sin * outer}, Normal: out},
			Vertex{Position: math.Vec3{X: cos * outer, Y: sin * outer, Z: thickness}, Normal: out},
			Vertex{Position: math.Vec3{X: cos * inner, Y: sin * inner}, Normal: out.Neg()},
			Vertex{Position: math.Vec3{X: cos * inner, Y: sin * inner, Z: thickness}, Normal: out.Neg()},
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 4)
		m.quad(base, base+4, base+5, base+1)   // outer wall
		m.quad(base+2, base+3, base+7, base+6) // inner wall
	}

	// Annular faces, duplicated with flat normals.
	for _, face := range []struct {
		z float64
		n math.Vec3
	}{{0, math.Vec3{Z: -1}}, {thickness, math.Vec3{Z: 1}}} {
		start := uint32(len(m.Vertices))
		for i := 0; i <= segments; i++ {
			theta := float64(i) * 2 * gomath.Pi / float64(segments)
			sin, cos := gomath.Sincos(theta)
			m.Vertices = append(m.Vertices,
				Vertex{Position: math.Vec3{X: cos * outer, Y: sin * outer, Z: face.z}, Normal: face.n},
				Vertex{Position: math.Vec3{X: cos * inner, Y: sin * inner, Z: face.z}, Normal: face.n},
			)
		}
		for i := 0; i < segments; i++ {
			base := start + uint32(i*2)
			m.quad(base, base+2, base+3, base+1)
		}
	}
	return m
}

// Box generates an axis-aligned box centered at the origin.
func Box(name string, w, h, d float64) *Mesh {
	m := NewMesh(name)
	hw, hh, hd := w/2, h/2, d/2

	faces := []struct {
		n    math.Vec3
		a, b math.Vec3 // in-plane axes
	}{
		{math.Vec3{X: 1}, math.Vec3{Y: 1}, math.Vec3{Z: 1}},
		{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Y: 1}, math.Vec3{Z: 1}, math.Vec3{X: 1}},
		{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
		{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Z: -1}, math.Vec3{Y: 1}, math.Vec3{X: 1}},
	}
	half := math.Vec3{X: hw, Y: hh, Z: hd}
	scale := func(v math.Vec3) math.Vec3 {
		return math.Vec3{X: v.X * half.X, Y: v.Y * half.Y, Z: v.Z * half.Z}
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		c := scale(f.n)
		a := scale(f.a)
		b := scale(f.b)
		m.Vertices = append(m.Vertices,
			Vertex{Position: c.Sub(a).Sub(b), Normal: f.n, UV: math.Vec2{}},
			Vertex{Position: c.Add(a).Sub(b), Normal: f.n, UV: math.Vec2{X: 1}},
			Vertex{Position: c.Add(a).Add(b), Normal: f.n, UV: math.Vec2{X: 1, Y: 1}},
			Vertex{Position: c.Sub(a).Add(b), Normal: f.n, UV: math.Vec2{Y: 1}},
		)
		m.quad(base, base+1, base+2, base+3)
	}
	return m
}

// Wedge generates a right-triangular prism: the triangle lies in the XZ
// plane with its right angle at the origin, legs w along +X and h along +Z,
// extruded thickness d along Y centered on the plane. Used for lug gussets.
func Wedge(name string, w, h, d float64) *Mesh {
	m := NewMesh(name)
	hd := d / 2

	tri := []math.Vec3{{}, {X: w}, {Z: h}}
	// Two triangular faces.
	for _, side := range []float64{-hd, hd} {
		base := uint32(len(m.Vertices))
		n := math.Vec3{Y: 1}
		if side < 0 {
			n = math.Vec3{Y: -1}
		}
		for _, p := range tri {
			m.Vertices = append(m.Vertices, Vertex{
				Position: math.Vec3{X: p.X, Y: side, Z: p.Z},
				Normal:   n,
			})
		}
		if side < 0 {
			m.tri(base, base+2, base+1)
		} else {
			m.tri(base, base+1, base+2)
		}
	}
	// Three rectangular walls.
	edges := [][2]math.Vec3{
		{tri[0], tri[1]}, // bottom
		{tri[1], tri[2]}, // hypotenuse
		{tri[2], tri[0]}, // back
	}
	for _, e := range edges {
		base := uint32(len(m.Vertices))
		edge := e[1].Sub(e[0])
		n := edge.Cross(math.Vec3{Y: 1}).Normalize()
		m.Vertices = append(m.Vertices,
			Vertex{Position: math.Vec3{X: e[0].X, Y: -hd, Z: e[0].Z}, Normal: n},
			Vertex{Position: math.Vec3{X: e[1].X, Y: -hd, Z: e[1].Z}, Normal: n},
			Vertex{Position: math.Vec3{X: e[1].X, Y: hd, Z: e[1].Z}, Normal: n},
			Vertex{Position: math.Vec3{X: e[0].X, Y: hd, Z: e[0].Z}, Normal: n},
		)
		m.quad(base, base+1, base+2, base+3)
	}
	return m
}

// Quad generates a flat rectangle in the XY plane facing +Z, centered at the
// origin, with full 0..1 UVs. Used for texture decals.
func Quad(name string, w, h float64) *Mesh {
	m := NewMesh(name)
	hw, hh := w/2, h/2
	n := math.Vec3{Z: 1}
	m.Vertices = append(m.Vertices,
		Vertex{Position: math.Vec3{X: -hw, Y: -hh}, Normal: n, UV: math.Vec2{}},
		Vertex{Position: math.Vec3{X: hw, Y: -hh}, Normal: n, UV: math.Vec2{X: 1}},
		Vertex{Position: math.Vec3{X: hw, Y: hh}, Normal: n, UV: math.Vec2{X: 1, Y: 1}},
		Vertex{Position: math.Vec3{X: -hw, Y: hh}, Normal: n, UV: math.Vec2{Y: 1}},
	)
	m.quad(0, 1, 2, 3)
	return m
}
