// Package lighting provides lighting utilities for the viewer.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/vesselcad/pkg/math"
)

// KeyLight converts azimuth/elevation angles in degrees to the direction the
// light shines along, pointing from the light toward the scene. Azimuth is
// rotation around world Y (0 along +Z), elevation is the angle above the
// horizon (0-90).
func KeyLight(azimuthDeg, elevationDeg float64) math.Vec3 {
	az := azimuthDeg * gomath.Pi / 180
	el := elevationDeg * gomath.Pi / 180

	// Direction toward the light, then negated to shine down on the scene.
	toward := math.Vec3{
		X: gomath.Cos(el) * gomath.Sin(az),
		Y: gomath.Sin(el),
		Z: gomath.Cos(el) * gomath.Cos(az),
	}
	return toward.Neg().Normalize()
}

// DefaultKeyLight is the stock viewer key light: high and slightly behind
// the default camera, so head contours shade visibly.
func DefaultKeyLight() math.Vec3 {
	return KeyLight(40, 55)
}
