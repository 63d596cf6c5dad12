package math

import (
	gomath "math"
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("Identity().TransformPoint() = %v, want %v", got, p)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{11, 21, 31}
	if got != want {
		t.Errorf("Translate().TransformPoint() = %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{100, 100, 100})
	got := m.TransformDirection(Vec3{0, 0, 1})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("TransformDirection() = %v, want %v", got, want)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(Vec3{5, -3, 2}).Mul(QuatFromAxisAngle(Vec3{Y: 1}, 0.6).ToMat4())
	inv := m.Inverse()
	p := Vec3{7, 8, 9}
	got := inv.TransformPoint(m.TransformPoint(p))
	if !nearVec3(got, p, 1e-9) {
		t.Errorf("Inverse round-trip = %v, want %v", got, p)
	}
}

func TestTRSOrder(t *testing.T) {
	m := TRS(Vec3{10, 0, 0}, QuatFromAxisAngle(Vec3{Z: 1}, gomath.Pi/2), Vec3{2, 2, 2})
	// Scale (2,0,0), rotate to (0,2,0), translate to (10,2,0).
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{10, 2, 0}
	if !nearVec3(got, want, 1e-12) {
		t.Errorf("TRS().TransformPoint() = %v, want %v", got, want)
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 10}
	view := LookAt(eye, Vec3{}, Vec3{Y: 1})
	got := view.TransformPoint(eye)
	if !nearVec3(got, Vec3{}, 1e-12) {
		t.Errorf("LookAt maps eye to %v, want origin", got)
	}
}
