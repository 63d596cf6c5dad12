// Package geometry holds CPU-side mesh data and the primitive generators the
// attachment builders are composed from. Primitives are generated in a local
// frame along the +Z axis; placement happens later as a rigid transform.
package geometry

import (
	"github.com/Faultbox/vesselcad/pkg/math"
)

// Vertex is one mesh vertex.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Mesh holds vertex and index data. GPU upload is the renderer's business.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh returns an empty named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// Transform applies a rigid transform to every vertex in place. Normals are
// rotated by the upper 3x3 and re-normalized, so the matrix must not shear.
func (m *Mesh) Transform(mat math.Mat4) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.TransformPoint(m.Vertices[i].Position)
		m.Vertices[i].Normal = mat.TransformDirection(m.Vertices[i].Normal).Normalize()
	}
	return m
}

// Translate shifts every vertex by v.
func (m *Mesh) Translate(v math.Vec3) *Mesh {
	return m.Transform(math.Translate(v))
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		p := v.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}

func (m *Mesh) quad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

func (m *Mesh) tri(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}
