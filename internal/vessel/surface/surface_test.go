package surface

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// testVessel is the reference geometry used throughout: horizontal,
// 8000mm tangent-to-tangent, 3000mm diameter, 2:1 heads (750mm deep).
func testVessel() *vessel.State {
	s := vessel.New()
	s.Length = 8000
	s.Diameter = 3000
	s.HeadRatio = 2.0
	s.Orientation = vessel.Horizontal
	return s
}

func TestShellPointsAreRadial(t *testing.T) {
	s := testVessel()
	f := FrameFor(s.Orientation)

	for pos := 0.0; pos <= s.Length; pos += 500 {
		for angle := 0.0; angle < 360; angle += 15 {
			p, n := Place(s, pos, angle)

			x, y, z := f.ToCanonical(p)
			assert.InDelta(t, pos, x, 1e-9)
			assert.InDelta(t, s.Radius(), gomath.Hypot(y, z), 1e-9,
				"pos=%v angle=%v: point must sit at radius", pos, angle)

			// Normal has no axial component and is aligned with the
			// radial direction.
			assert.InDelta(t, 0, n.Dot(f.Axial), 1e-12)
			radial := p.Sub(f.Axial.Scale(x)).Normalize()
			assert.InDelta(t, 1, n.Dot(radial), 1e-9,
				"pos=%v angle=%v: shell normal must be purely radial", pos, angle)
		}
	}
}

func TestHeadPointsSatisfyEllipsoid(t *testing.T) {
	s := testVessel()
	f := FrameFor(s.Orientation)
	hd := s.HeadDepth()
	r := s.Radius()

	for _, pos := range []float64{-750, -600, -300, -50, 8050, 8300, 8600, 8750} {
		for angle := 0.0; angle < 360; angle += 30 {
			p, _ := Place(s, pos, angle)
			x, y, z := f.ToCanonical(p)

			a := x
			if x > 0 {
				a = x - s.Length
			}
			lhs := (a/hd)*(a/hd) + (y*y+z*z)/(r*r)
			assert.InDelta(t, 1, lhs, 1e-9,
				"pos=%v angle=%v must satisfy the head ellipsoid equation", pos, angle)
		}
	}
}

func TestHeadNormalBlendsAxialAndRadial(t *testing.T) {
	s := testVessel()
	f := FrameFor(s.Orientation)

	_, n := Place(s, -300, 0)
	assert.Negative(t, n.Dot(f.Axial), "left-head normal must tilt toward -axial")
	assert.Positive(t, n.Dot(f.U), "angle-0 normal keeps a radial component")
	assert.InDelta(t, 1, n.Length(), 1e-12)

	_, n = Place(s, 8300, 0)
	assert.Positive(t, n.Dot(f.Axial), "right-head normal must tilt toward +axial")
}

func TestScenarioMidShellNozzle(t *testing.T) {
	s := testVessel()

	p, n := Place(s, 4000, 90)
	assert.InDelta(t, 4000, p.X, 1e-9)
	assert.InDelta(t, 1500, p.Y, 1e-9, "angle 90 on a horizontal vessel is world +Y")
	assert.InDelta(t, 0, p.Z, 1e-9)
	assert.InDelta(t, 0, n.X, 1e-12)
	assert.InDelta(t, 1, n.Y, 1e-12)
	assert.InDelta(t, 0, n.Z, 1e-12)
}

func TestScenarioLeftHeadLug(t *testing.T) {
	s := testVessel()

	p, n := Place(s, -300, 0)
	wantLocal := 1500 * gomath.Sqrt(1-gomath.Pow(300.0/750.0, 2))
	assert.InDelta(t, 1374.77, wantLocal, 0.01, "sanity on the reference value")
	assert.InDelta(t, -300, p.X, 1e-9)
	assert.InDelta(t, wantLocal, p.Z, 1e-9)
	assert.Less(t, n.X, -1e-6, "head normal is not purely radial")
}

func TestRoundTripShellAndHeads(t *testing.T) {
	for _, orient := range []vessel.Orientation{vessel.Horizontal, vessel.Vertical} {
		s := testVessel()
		s.Orientation = orient

		min, max := s.PosRange()
		for pos := min; pos <= max; pos += 73.0 {
			for angle := 0.0; angle < 360; angle += 11.25 {
				p, _ := Place(s, pos, angle)
				gotPos, gotAngle := Invert(s, p)

				wantAngle := angle
				if gomath.Abs(pos-min) < 1e-9 || gomath.Abs(pos-max) < 1e-9 {
					// At the poles the angle is undefined; only pos
					// must survive.
					wantAngle = gotAngle
				}
				assert.InDelta(t, pos, gotPos, 1e-6, "orient=%v pos=%v angle=%v", orient, pos, angle)
				assert.InDelta(t, wantAngle, gotAngle, 1e-6, "orient=%v pos=%v angle=%v", orient, pos, angle)
			}
		}
	}
}

func TestPlaceClampsOutOfRange(t *testing.T) {
	s := testVessel()
	f := FrameFor(s.Orientation)

	p, _ := Place(s, -99999, 45)
	x, y, z := f.ToCanonical(p)
	assert.InDelta(t, -750, x, 1e-9, "clamped to the left pole")
	assert.InDelta(t, 0, gomath.Hypot(y, z), 1e-6)
}

func TestVerticalOrientationBasis(t *testing.T) {
	s := testVessel()
	s.Orientation = vessel.Vertical

	p, n := Place(s, 4000, 0)
	assert.InDelta(t, 4000, p.Y, 1e-9, "vertical vessel runs along world Y")
	assert.InDelta(t, 1500, p.X, 1e-9, "angle 0 points along world X")
	assert.InDelta(t, 0, n.Y, 1e-12, "shell normal stays horizontal")
}

func TestNozzleAxisModes(t *testing.T) {
	s := testVessel()

	tests := []struct {
		name   string
		angle  float64
		mode   vessel.OrientMode
		want   math.Vec3
		approx bool
	}{
		{"radial at side", 0, vessel.OrientRadial, math.Vec3{Z: 1}, false},
		{"forced up", 0, vessel.OrientUp, math.Vec3{Y: 1}, false},
		{"forced down", 0, vessel.OrientDown, math.Vec3{Y: -1}, false},
		{"horizontal at side keeps radial", 0, vessel.OrientHorizontal, math.Vec3{Z: 1}, false},
		{"horizontal at top falls back to radial", 90, vessel.OrientHorizontal, math.Vec3{Y: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := vessel.Nozzle{Pos: 4000, Angle: tt.angle, Size: "DN100", Mode: tt.mode}
			got := NozzleAxis(s, n)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-9)
			assert.InDelta(t, 1, got.Length(), 1e-9, "axis must never be zero-length")
		})
	}
}

func TestIntersectShellCylinder(t *testing.T) {
	s := testVessel()

	p, ok := IntersectShell(s, math.Vec3{X: 4000, Y: 5000}, math.Vec3{Y: -1})
	require.True(t, ok)
	assert.InDelta(t, 4000, p.X, 1e-9)
	assert.InDelta(t, 1500, p.Y, 1e-9)

	pos, angle := Invert(s, p)
	assert.InDelta(t, 4000, pos, 1e-9)
	assert.InDelta(t, 90, angle, 1e-9)
}

func TestIntersectShellHead(t *testing.T) {
	s := testVessel()

	// Axial ray into the left head pole.
	p, ok := IntersectShell(s, math.Vec3{X: -2000}, math.Vec3{X: 1})
	require.True(t, ok)
	assert.InDelta(t, -750, p.X, 1e-9)

	// Oblique ray onto the right head.
	p, ok = IntersectShell(s, math.Vec3{X: 8400, Y: 5000}, math.Vec3{Y: -1})
	require.True(t, ok)
	assert.Greater(t, p.X, s.Length)
	pos, _ := Invert(s, p)
	assert.Greater(t, pos, s.Length)
	assert.LessOrEqual(t, pos, s.Length+s.HeadDepth())
}

func TestIntersectShellMiss(t *testing.T) {
	s := testVessel()

	_, ok := IntersectShell(s, math.Vec3{X: 4000, Y: 5000}, math.Vec3{Y: 1})
	assert.False(t, ok, "ray pointing away must miss")

	_, ok = IntersectShell(s, math.Vec3{X: -5000, Y: 5000}, math.Vec3{Y: -1})
	assert.False(t, ok, "ray beyond the head must miss")
}

func TestIntersectShellPicksNearestFace(t *testing.T) {
	s := testVessel()

	// Ray through the whole vessel: the near wall must win.
	p, ok := IntersectShell(s, math.Vec3{X: 4000, Z: 5000}, math.Vec3{Z: -1})
	require.True(t, ok)
	assert.InDelta(t, 1500, p.Z, 1e-9)
}
