package geometry

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/vesselcad/pkg/math"
)

func TestTubeBounds(t *testing.T) {
	m := Tube("stub", 50, 50, 200, 16, true, true)
	min, max := m.Bounds()
	if gomath.Abs(min.Z) > 1e-9 || gomath.Abs(max.Z-200) > 1e-9 {
		t.Errorf("tube must span z 0..200, got %v..%v", min.Z, max.Z)
	}
	if gomath.Abs(min.X+50) > 1e-9 || gomath.Abs(max.X-50) > 1e-9 {
		t.Errorf("tube must span x -50..50, got %v..%v", min.X, max.X)
	}
}

func TestTubeTaperedNormals(t *testing.T) {
	m := Tube("taper", 100, 50, 200, 8, false, false)
	for _, v := range m.Vertices {
		if gomath.Abs(v.Normal.Length()-1) > 1e-9 {
			t.Fatalf("normal not unit length: %v", v.Normal)
		}
		if v.Normal.Z <= 0 {
			t.Fatalf("tapered side normal must tilt toward +Z, got %v", v.Normal)
		}
	}
}

func TestWasherStaysOutsideHole(t *testing.T) {
	m := Washer("eye", 55, 25, 20, 24)
	for _, v := range m.Vertices {
		rho := gomath.Hypot(v.Position.X, v.Position.Y)
		if rho < 25-1e-9 {
			t.Fatalf("vertex inside the hole at radius %v", rho)
		}
		if rho > 55+1e-9 {
			t.Fatalf("vertex outside the rim at radius %v", rho)
		}
	}
}

func TestTransformRotatesNormals(t *testing.T) {
	m := Quad("patch", 100, 100)
	rot := math.QuatFromAxisAngle(math.Vec3{X: 1}, gomath.Pi/2).ToMat4()
	m.Transform(rot)
	n := m.Vertices[0].Normal
	// +Z rotates onto -Y.
	if gomath.Abs(n.Y+1) > 1e-9 || gomath.Abs(n.Z) > 1e-9 {
		t.Errorf("normal after rotation = %v, want (0,-1,0)", n)
	}
}

func TestCylinderXSurface(t *testing.T) {
	m := CylinderX("shell", 1500, 8000, 48)
	for _, v := range m.Vertices {
		rho := gomath.Hypot(v.Position.Y, v.Position.Z)
		if gomath.Abs(rho-1500) > 1e-6 {
			t.Fatalf("shell vertex off the cylinder at rho=%v", rho)
		}
		if gomath.Abs(v.Normal.X) > 1e-12 {
			t.Fatalf("shell normal must have no axial component, got %v", v.Normal)
		}
	}
}

func TestHeadDomeXOnEllipsoid(t *testing.T) {
	r, hd := 1500.0, 750.0
	m := HeadDomeX("head", r, hd, -1, 32, 12)
	for _, v := range m.Vertices {
		a := v.Position.X
		rho := gomath.Hypot(v.Position.Y, v.Position.Z)
		lhs := (a/hd)*(a/hd) + (rho/r)*(rho/r)
		if gomath.Abs(lhs-1) > 1e-9 {
			t.Fatalf("dome vertex off the ellipsoid: %v (lhs=%v)", v.Position, lhs)
		}
		if a > 1e-9 || a < -hd-1e-9 {
			t.Fatalf("left dome must span x -750..0, got %v", a)
		}
	}
}

func TestWedgeVertexCount(t *testing.T) {
	m := Wedge("gusset", 60, 90, 12)
	// 2 triangular faces + 3 walls.
	if len(m.Indices) != 2*3+3*6 {
		t.Errorf("wedge index count = %d, want %d", len(m.Indices), 2*3+3*6)
	}
}

func TestArcPlateTouchesContactPoint(t *testing.T) {
	m := ArcPlate("cradle", 1500, 300, 20, 120, 24)
	touched := false
	for _, v := range m.Vertices {
		if v.Position.Distance(math.Vec3{X: -150}) < 1e-6 {
			touched = true
		}
		// Nothing may poke through the shell interior.
		d := v.Position.Sub(math.Vec3{Z: -1500}).Length()
		if d < 1500-1e-6 {
			t.Fatalf("cradle vertex inside the shell: %v", v.Position)
		}
	}
	if !touched {
		t.Error("cradle inner face must touch the shell at the contact edge")
	}
}
