// Package surface maps vessel-local cylindrical coordinates (axial position,
// circumferential angle) to world-space points and surface normals, and back.
//
// The math is written once in a canonical frame where the vessel axis is X,
// angle 0 points along Z and angle 90 along Y. Orientation (horizontal or
// vertical) is a single orthonormal basis change applied on the way in and
// out. Axial position 0 is the reference tangent line; the shell spans
// [0, Length] and each head extends a further head depth beyond its tangent.
package surface

import (
	gomath "math"

	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// Frame is the orthonormal basis carrying canonical coordinates into world
// space: Axial is the vessel axis, U the angle-0 direction, V the angle-90
// direction.
type Frame struct {
	Axial, U, V math.Vec3
}

// FrameFor returns the basis for a vessel orientation. A horizontal vessel
// runs along world X; a vertical one along world Y with position measured
// up from the bottom tangent line.
func FrameFor(o vessel.Orientation) Frame {
	if o == vessel.Vertical {
		return Frame{
			Axial: math.Vec3{Y: 1},
			U:     math.Vec3{X: 1},
			V:     math.Vec3{Z: 1},
		}
	}
	return Frame{
		Axial: math.Vec3{X: 1},
		U:     math.Vec3{Z: 1},
		V:     math.Vec3{Y: 1},
	}
}

// ToWorld converts a canonical (x, y, z) triple into world space.
func (f Frame) ToWorld(x, y, z float64) math.Vec3 {
	return f.Axial.Scale(x).Add(f.V.Scale(y)).Add(f.U.Scale(z))
}

// ToCanonical converts a world point into the canonical (x, y, z) triple.
func (f Frame) ToCanonical(p math.Vec3) (x, y, z float64) {
	return p.Dot(f.Axial), p.Dot(f.V), p.Dot(f.U)
}

// Place maps (pos, angle) onto the composite shell surface. It returns the
// world-space contact point and the outward unit surface normal. On the
// cylindrical span the normal is purely radial; on a head it is the
// normalized gradient of the ellipsoid implicit function, which tilts
// axially toward the pole.
func Place(st *vessel.State, pos, angleDeg float64) (point, normal math.Vec3) {
	f := FrameFor(st.Orientation)
	r := st.Radius()
	hd := st.HeadDepth()

	x := st.ClampPos(pos)
	theta := vessel.NormalizeAngle(angleDeg) * gomath.Pi / 180
	sin, cos := gomath.Sincos(theta)

	// Axial offset from the nearer tangent line; zero on the shell span.
	var a float64
	switch {
	case x < 0:
		a = x
	case x > st.Length:
		a = x - st.Length
	}

	if a == 0 || hd == 0 {
		point = f.ToWorld(x, r*sin, r*cos)
		normal = f.ToWorld(0, sin, cos)
		return point, normal
	}

	if a < -hd {
		a = -hd
	} else if a > hd {
		a = hd
	}

	radicand := 1 - (a/hd)*(a/hd)
	if radicand < 0 {
		radicand = 0
	}
	rLocal := r * gomath.Sqrt(radicand)

	point = f.ToWorld(x, rLocal*sin, rLocal*cos)

	// Gradient of (a/hd)^2 + (rho/r)^2 = 1: axial term a/hd^2, radial term
	// rho/r^2. Treating this as purely radial visibly mis-tilts attachments
	// near the heads.
	axial := a / (hd * hd)
	radial := rLocal / (r * r)
	normal = f.ToWorld(axial, radial*sin, radial*cos).Normalize()
	return point, normal
}

// Invert is the exact inverse of Place for points on (or near) the shell
// surface: the axial coordinate is read off directly, clamped into the valid
// range, and the angle wrapped into [0,360). It is used to turn a drag ray
// hit back into an attachment coordinate.
func Invert(st *vessel.State, p math.Vec3) (pos, angleDeg float64) {
	f := FrameFor(st.Orientation)
	x, y, z := f.ToCanonical(p)

	pos = st.ClampPos(x)
	angleDeg = vessel.NormalizeAngle(gomath.Atan2(y, z) * 180 / gomath.Pi)
	return pos, angleDeg
}

// worldUp is the up direction used by the fixed nozzle orientation modes.
var worldUp = math.Vec3{Y: 1}

// NozzleAxis returns the direction the nozzle stub points along. Radial mode
// uses the surface normal unmodified; the fixed modes replace it with a
// world-axis-aligned vector. A degenerate projection (near-zero horizontal
// component at the top or bottom of the shell) falls back to the radial
// normal rather than returning a zero-length vector.
func NozzleAxis(st *vessel.State, n vessel.Nozzle) math.Vec3 {
	_, normal := Place(st, n.Pos, n.Angle)

	switch n.Mode {
	case vessel.OrientUp:
		return worldUp
	case vessel.OrientDown:
		return worldUp.Neg()
	case vessel.OrientHorizontal:
		flat := math.Vec3{X: normal.X, Z: normal.Z}
		if flat.Length() < 1e-6 {
			return normal
		}
		return flat.Normalize()
	}
	return normal
}

const rayEpsilon = 1e-9

// IntersectShell finds the nearest intersection of a world-space ray with
// the bare shell surface (cylinder plus both heads, no attachments).
// Used during drags so attachments never occlude the surface being dragged
// over. Returns false when the ray misses entirely.
func IntersectShell(st *vessel.State, origin, dir math.Vec3) (math.Vec3, bool) {
	f := FrameFor(st.Orientation)
	ox, oy, oz := f.ToCanonical(origin)
	dx, dy, dz := f.ToCanonical(dir)

	r := st.Radius()
	hd := st.HeadDepth()
	best := gomath.Inf(1)

	// Cylinder: y^2 + z^2 = r^2, x in [0, Length].
	a := dy*dy + dz*dz
	if a > rayEpsilon {
		b := 2 * (oy*dy + oz*dz)
		c := oy*oy + oz*oz - r*r
		for _, t := range solveQuadratic(a, b, c) {
			if t <= rayEpsilon {
				continue
			}
			x := ox + t*dx
			if x >= 0 && x <= st.Length && t < best {
				best = t
			}
		}
	}

	// Heads: ((x-cx)/hd)^2 + (y^2+z^2)/r^2 = 1, axial span on the far side
	// of each tangent line.
	if hd > 0 {
		for _, cx := range []float64{0, st.Length} {
			px := (ox - cx) / hd
			vx := dx / hd
			py, vy := oy/r, dy/r
			pz, vz := oz/r, dz/r

			qa := vx*vx + vy*vy + vz*vz
			qb := 2 * (px*vx + py*vy + pz*vz)
			qc := px*px + py*py + pz*pz - 1
			for _, t := range solveQuadratic(qa, qb, qc) {
				if t <= rayEpsilon || t >= best {
					continue
				}
				x := ox + t*dx
				if cx == 0 && x <= 0 || cx != 0 && x >= st.Length {
					best = t
				}
			}
		}
	}

	if gomath.IsInf(best, 1) {
		return math.Vec3{}, false
	}
	return origin.Add(dir.Scale(best)), true
}

// solveQuadratic returns the real roots of ax^2 + bx + c, smallest first.
func solveQuadratic(a, b, c float64) []float64 {
	if gomath.Abs(a) < rayEpsilon {
		if gomath.Abs(b) < rayEpsilon {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := gomath.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return []float64{t0, t1}
}
