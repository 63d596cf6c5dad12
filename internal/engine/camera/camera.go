// Package camera provides the orbit camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/vesselcad/pkg/math"
)

// OrbitCamera orbits around a center point. All distances are millimetres to
// match the model space; angles are radians.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float64
	RotationX float64 // pitch
	RotationY float64 // yaw

	// Constraints
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	// Sensitivity
	DragSensitivity float64
	ZoomSensitivity float64

	FovY  float64
	ZNear float64
	ZFar  float64

	// Enabled gates pointer input. The interaction layer clears it while an
	// attachment drag is in progress so orbiting does not fight the drag.
	enabled bool
}

// NewOrbitCamera creates an orbit camera with viewer defaults.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        8000,
		RotationX:       0.4,
		RotationY:       0.6,
		MinDistance:     500,
		MaxDistance:     100000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            gomath.Pi / 4,
		ZNear:           10,
		ZFar:            200000,
		enabled:         true,
	}
}

// Enabled reports whether the camera accepts pointer input.
func (c *OrbitCamera) Enabled() bool { return c.enabled }

// SetEnabled toggles pointer input.
func (c *OrbitCamera) SetEnabled(enabled bool) { c.enabled = enabled }

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * gomath.Cos(c.RotationX) * gomath.Sin(c.RotationY)
	y := c.Distance * gomath.Sin(c.RotationX)
	z := c.Distance * gomath.Cos(c.RotationX) * gomath.Cos(c.RotationY)
	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float64) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.ZNear, c.ZFar)
}

// HandleDrag updates rotation from a pointer drag delta. Ignored while
// disabled.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float64) {
	if !c.enabled {
		return
	}
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance from a scroll delta. Ignored while disabled.
func (c *OrbitCamera) HandleZoom(delta float64) {
	if !c.enabled {
		return
	}
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandlePan moves the center point in view-aligned directions. Speed scales
// with distance for a consistent feel.
func (c *OrbitCamera) HandlePan(right, up float64) {
	if !c.enabled {
		return
	}
	speed := c.Distance * 0.001

	rightDir := math.Vec3{
		X: gomath.Cos(c.RotationY),
		Z: -gomath.Sin(c.RotationY),
	}
	c.Center = c.Center.Add(rightDir.Scale(right * speed))
	c.Center.Y += up * speed
}

// FitToBounds frames an axis-aligned bounding box.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	size := max.Sub(min)
	extent := size.X
	if size.Y > extent {
		extent = size.Y
	}
	if size.Z > extent {
		extent = size.Z
	}

	// Back off until the extent fits the vertical field of view.
	c.Distance = extent / (2 * gomath.Tan(c.FovY/2)) * 1.4
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	c.RotationX = 0.4
	c.RotationY = 0.6
}
