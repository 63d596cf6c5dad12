package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/vesselcad/internal/engine/scene"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	r := Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: -1}}
	tt, hit := r.IntersectAABB(box)
	require.True(t, hit)
	assert.InDelta(t, 9, tt, 1e-12)

	r = Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: 1}}
	_, hit = r.IntersectAABB(box)
	assert.False(t, hit, "ray pointing away must miss")

	// Ray starting inside returns the exit distance.
	r = Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	tt, hit = r.IntersectAABB(box)
	require.True(t, hit)
	assert.InDelta(t, 1, tt, 1e-12)
}

func TestIntersectNodeResolvesOwner(t *testing.T) {
	s := vessel.New()
	s.Length = 8000
	s.Diameter = 3000
	s.AddNozzle("DN150", 4000, 90)
	b := scene.Assemble(s, vessel.NoSelection)

	noz := b.Attachments[vessel.Nozzles][0]
	// Shoot down at the nozzle from above; the stub tip is at y =
	// 1500 + projection.
	r := Ray{Origin: math.Vec3{X: 4000, Y: 5000}, Direction: math.Vec3{Y: -1}}
	hit, ok := IntersectNode(r, noz)
	require.True(t, ok)
	require.NotNil(t, hit.Owner)
	assert.Equal(t, scene.Tag{Collection: vessel.Nozzles, Index: 0}, *hit.Owner)
	assert.Greater(t, hit.Point.Y, 1500.0, "hit lands on the stub, outside the shell")
}

func TestIntersectNodesPicksNearest(t *testing.T) {
	s := vessel.New()
	s.Length = 8000
	s.Diameter = 3000
	s.AddNozzle("DN100", 3000, 90)
	s.AddNozzle("DN100", 5000, 90)
	b := scene.Assemble(s, vessel.NoSelection)

	// A ray along -X at nozzle height passes over both stubs; aim
	// through their tips so the nearer (pos=5000) wins.
	r := Ray{Origin: math.Vec3{X: 9000, Y: 1550}, Direction: math.Vec3{X: -1}}
	hit, ok := IntersectNodes(r, b.Attachments[vessel.Nozzles])
	require.True(t, ok)
	require.NotNil(t, hit.Owner)
	assert.Equal(t, 1, hit.Owner.Index, "nearest nozzle along the ray wins")
}

func TestScreenToRayCenterLooksForward(t *testing.T) {
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(1.0, 16.0/9.0, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(800, 450, 1600, 900, inv)
	assert.InDelta(t, 0, r.Direction.X, 1e-9)
	assert.InDelta(t, 0, r.Direction.Y, 1e-9)
	assert.InDelta(t, -1, r.Direction.Z, 1e-9, "center pixel looks down -Z")
}
