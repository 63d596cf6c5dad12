package scene

// Material holds the surface shading settings for a node's mesh.
type Material struct {
	Name      string
	Diffuse   [3]float64
	Metallic  float64
	Texture   string // decal image reference; empty for plain surfaces
	Wireframe bool
}

// Steel is the default attachment material.
func Steel() *Material {
	return &Material{Name: "steel", Diffuse: [3]float64{0.55, 0.57, 0.60}, Metallic: 0.7}
}

// Highlight is the material applied to the selected attachment.
func Highlight() *Material {
	return &Material{Name: "highlight", Diffuse: [3]float64{0.95, 0.55, 0.10}, Metallic: 0.3}
}

// pick returns the highlight material when selected, base otherwise.
func pick(base *Material, selected bool) *Material {
	if selected {
		return Highlight()
	}
	return base
}
