// Package picking provides ray casting over the assembled vessel scene:
// screen-to-world unprojection, a broad-phase AABB test and a Möller-Trumbore
// triangle narrow phase against tagged nodes.
package picking

import (
	gomath "math"

	"github.com/Faultbox/vesselcad/internal/engine/scene"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// Ray is a ray in world space.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // flip Y

	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return Ray{Origin: origin, Direction: dir}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// IntersectAABB tests the ray against a box using the slab method. Returns
// the entry distance, or the exit distance when the ray starts inside.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	for _, axis := range [3][3]float64{
		{r.Origin.X, r.Direction.X, 0},
		{r.Origin.Y, r.Direction.Y, 1},
		{r.Origin.Z, r.Direction.Z, 2},
	} {
		o, d := axis[0], axis[1]
		var lo, hi float64
		switch axis[2] {
		case 0:
			lo, hi = box.Min.X, box.Max.X
		case 1:
			lo, hi = box.Min.Y, box.Max.Y
		default:
			lo, hi = box.Min.Z, box.Max.Z
		}
		if d != 0 {
			t1 := (lo - o) / d
			t2 := (hi - o) / d
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if o < lo || o > hi {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Hit is a resolved ray intersection.
type Hit struct {
	Distance float64
	Point    math.Vec3
	Node     *scene.Node
	Owner    *scene.Tag
}

// IntersectNode tests the ray against every triangle of every mesh in the
// node's subtree, in world space. Returns the nearest hit.
func IntersectNode(r Ray, root *scene.Node) (Hit, bool) {
	best := Hit{Distance: gomath.Inf(1)}
	root.Walk(func(n *scene.Node) {
		if n.Mesh == nil {
			return
		}
		world := n.WorldMatrix()

		// Broad phase on the transformed bounds.
		min, max := n.Mesh.Bounds()
		box := worldAABB(min, max, world)
		if _, ok := r.IntersectAABB(box); !ok {
			return
		}

		mesh := n.Mesh
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			v0 := world.TransformPoint(mesh.Vertices[mesh.Indices[i]].Position)
			v1 := world.TransformPoint(mesh.Vertices[mesh.Indices[i+1]].Position)
			v2 := world.TransformPoint(mesh.Vertices[mesh.Indices[i+2]].Position)

			t, ok := mollerTrumbore(r, v0, v1, v2)
			if ok && t > 0 && t < best.Distance {
				best = Hit{
					Distance: t,
					Point:    r.Origin.Add(r.Direction.Scale(t)),
					Node:     n,
					Owner:    n.Owner(),
				}
			}
		}
	})
	if gomath.IsInf(best.Distance, 1) {
		return Hit{}, false
	}
	return best, true
}

// IntersectNodes tests the ray against a list of subtrees and returns the
// nearest hit across all of them.
func IntersectNodes(r Ray, nodes []*scene.Node) (Hit, bool) {
	best := Hit{Distance: gomath.Inf(1)}
	found := false
	for _, n := range nodes {
		if h, ok := IntersectNode(r, n); ok && h.Distance < best.Distance {
			best = h
			found = true
		}
	}
	return best, found
}

// worldAABB transforms a local AABB into a world-space AABB by transforming
// all eight corners.
func worldAABB(min, max math.Vec3, world math.Mat4) AABB {
	corners := [8]math.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
	}
	out := AABB{Min: world.TransformPoint(corners[0])}
	out.Max = out.Min
	for _, c := range corners[1:] {
		p := world.TransformPoint(c)
		if p.X < out.Min.X {
			out.Min.X = p.X
		}
		if p.Y < out.Min.Y {
			out.Min.Y = p.Y
		}
		if p.Z < out.Min.Z {
			out.Min.Z = p.Z
		}
		if p.X > out.Max.X {
			out.Max.X = p.X
		}
		if p.Y > out.Max.Y {
			out.Max.Y = p.Y
		}
		if p.Z > out.Max.Z {
			out.Max.Z = p.Z
		}
	}
	return out
}

// mollerTrumbore is the standard ray-triangle intersection.
func mollerTrumbore(r Ray, v0, v1, v2 math.Vec3) (float64, bool) {
	const epsilon = 1e-9

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, false // parallel
	}

	f := 1.0 / a
	s := r.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t <= epsilon {
		return 0, false
	}
	return t, true
}
