package lighting

import (
	gomath "math"
	"testing"
)

func TestKeyLightShinesDownward(t *testing.T) {
	d := KeyLight(40, 55)
	if d.Y >= 0 {
		t.Errorf("light with positive elevation must shine downward, got Y=%v", d.Y)
	}
	if gomath.Abs(d.Length()-1) > 1e-9 {
		t.Errorf("direction not normalized: |d| = %v", d.Length())
	}
}

func TestKeyLightAtZenith(t *testing.T) {
	d := KeyLight(123, 90)
	if gomath.Abs(d.Y+1) > 1e-9 {
		t.Errorf("zenith light must point straight down, got %v", d)
	}
}

func TestKeyLightAzimuthSweep(t *testing.T) {
	// At zero elevation the direction lies in the horizontal plane and
	// tracks the azimuth.
	d := KeyLight(0, 0)
	if gomath.Abs(d.Z+1) > 1e-9 || gomath.Abs(d.Y) > 1e-9 {
		t.Errorf("azimuth 0 at horizon = %v, want -Z", d)
	}
	d = KeyLight(90, 0)
	if gomath.Abs(d.X+1) > 1e-9 {
		t.Errorf("azimuth 90 at horizon = %v, want -X", d)
	}
}
