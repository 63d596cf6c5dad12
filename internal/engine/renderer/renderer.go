// Package renderer draws assembled vessel scenes with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/vesselcad/internal/engine/geometry"
	"github.com/Faultbox/vesselcad/internal/engine/lighting"
	"github.com/Faultbox/vesselcad/internal/engine/scene"
	"github.com/Faultbox/vesselcad/internal/engine/shader"
	"github.com/Faultbox/vesselcad/internal/engine/texture"
	"github.com/Faultbox/vesselcad/internal/logger"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// DecalDir resolves relative decal image paths in documents.
	DecalDir string
}

// Renderer owns the GL program and per-mesh GPU buffers. Meshes are uploaded
// lazily on first draw and must be released when a scene build is superseded.
type Renderer struct {
	config Config

	program uint32

	uModel      int32
	uView       int32
	uProjection int32
	uDiffuse    int32
	uMetallic   int32
	uLightDir   int32
	uUseTexture int32
	uTexture    int32

	// Key light in world space, pointing from the light to the scene.
	LightDir math.Vec3

	textures map[string]uint32
	images   *texture.Cache
}

type meshGPU struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// New creates a renderer. The OpenGL context must already be current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		LightDir: lighting.DefaultKeyLight(),
		textures: make(map[string]uint32),
		images:   texture.NewCache(cfg.DecalDir),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Gusset and rib plates are modelled as thin open shapes, so both faces
	// must draw.
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.12, 0.13, 0.16, 1.0)

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program

	r.uModel = shader.MustGetUniform(program, "uModel")
	r.uView = shader.MustGetUniform(program, "uView")
	r.uProjection = shader.MustGetUniform(program, "uProjection")
	r.uDiffuse = shader.MustGetUniform(program, "uDiffuse")
	r.uMetallic = shader.GetUniform(program, "uMetallic")
	r.uLightDir = shader.MustGetUniform(program, "uLightDir")
	r.uUseTexture = shader.GetUniform(program, "uUseTexture")
	r.uTexture = shader.GetUniform(program, "uTexture")

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Close releases the program and all cached textures. Mesh buffers are owned
// by the builds and released through ReleaseBuild.
func (r *Renderer) Close() {
	logger.Log.Info("closing renderer")
	for _, id := range r.textures {
		gl.DeleteTextures(1, &id)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the current viewport aspect ratio.
func (r *Renderer) Aspect() float64 {
	if r.config.Height == 0 {
		return 1
	}
	return float64(r.config.Width) / float64(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawBuild draws every mesh node of a build with the given matrices.
func (r *Renderer) DrawBuild(b *scene.Build, view, projection math.Mat4) {
	gl.UseProgram(r.program)

	v := view.Float32()
	p := projection.Float32()
	gl.UniformMatrix4fv(r.uView, 1, false, &v[0])
	gl.UniformMatrix4fv(r.uProjection, 1, false, &p[0])
	gl.Uniform3f(r.uLightDir, float32(r.LightDir.X), float32(r.LightDir.Y), float32(r.LightDir.Z))

	b.Walk(func(n *scene.Node) {
		if n.Mesh == nil {
			return
		}
		r.drawNode(n)
	})

	gl.BindVertexArray(0)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (r *Renderer) drawNode(n *scene.Node) {
	gpu, ok := n.GPU.(*meshGPU)
	if !ok || gpu == nil {
		gpu = uploadMesh(n.Mesh)
		n.GPU = gpu
	}

	model := n.WorldMatrix().Float32()
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])

	mat := n.Material
	if mat == nil {
		mat = scene.Steel()
	}
	gl.Uniform3f(r.uDiffuse, float32(mat.Diffuse[0]), float32(mat.Diffuse[1]), float32(mat.Diffuse[2]))
	gl.Uniform1f(r.uMetallic, float32(mat.Metallic))

	textured := false
	if mat.Texture != "" {
		if id, ok := r.textureFor(mat.Texture); ok {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, id)
			gl.Uniform1i(r.uTexture, 0)
			textured = true
		}
	}
	if textured {
		gl.Uniform1i(r.uUseTexture, 1)
	} else {
		gl.Uniform1i(r.uUseTexture, 0)
	}

	if mat.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(gpu.vao)
	gl.DrawElements(gl.TRIANGLES, gpu.count, gl.UNSIGNED_INT, nil)
}

// ReadPixels reads the current framebuffer back as RGBA, bottom-up.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// ReleaseBuild frees GPU buffers held by a superseded build. Call it before
// dropping the last reference, or the buffers leak for the life of the
// context.
func (r *Renderer) ReleaseBuild(b *scene.Build) {
	if b == nil {
		return
	}
	b.Walk(func(n *scene.Node) {
		gpu, ok := n.GPU.(*meshGPU)
		if !ok || gpu == nil {
			return
		}
		gl.DeleteVertexArrays(1, &gpu.vao)
		gl.DeleteBuffers(1, &gpu.vbo)
		gl.DeleteBuffers(1, &gpu.ebo)
		n.GPU = nil
	})
}

// textureFor returns the GL texture for a decal image path, uploading it on
// first use. Load failures are logged once and render as plain material.
func (r *Renderer) textureFor(path string) (uint32, bool) {
	if id, ok := r.textures[path]; ok {
		return id, id != 0
	}

	img, err := r.images.Get(path)
	if err != nil {
		logger.Log.Warn("decal image unavailable", zap.String("path", path), zap.Error(err))
		r.textures[path] = 0
		return 0, false
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	bounds := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	r.textures[path] = id
	return id, true
}

// uploadMesh interleaves position, normal and UV into one buffer.
func uploadMesh(m *geometry.Mesh) *meshGPU {
	stride := int32(8 * 4)

	vertices := make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		vertices = append(vertices,
			float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z),
			float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z),
			float32(v.UV.X), float32(v.UV.Y),
		)
	}

	gpu := &meshGPU{count: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &gpu.vao)
	gl.BindVertexArray(gpu.vao)

	gl.GenBuffers(1, &gpu.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gpu.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return gpu
}

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec2 vUV;

void main() {
	vNormal = mat3(uModel) * aNormal;
	vUV = aUV;
	gl_Position = uProjection * uView * uModel * vec4(aPos, 1.0);
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform vec3 uDiffuse;
uniform float uMetallic;
uniform vec3 uLightDir;
uniform bool uUseTexture;
uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float lambert = max(dot(n, -uLightDir), 0.0);
	// Back faces get a dimmed share of the key light so open plates read.
	lambert = max(lambert, 0.35 * max(dot(-n, -uLightDir), 0.0));

	vec3 base = uDiffuse;
	if (uUseTexture) {
		vec4 t = texture(uTexture, vUV);
		if (t.a < 0.1) {
			discard;
		}
		base = t.rgb;
	}

	vec3 color = base * (0.30 + 0.70 * lambert);
	color += uMetallic * pow(lambert, 16.0) * vec3(0.25);
	FragColor = vec4(color, 1.0);
}
`
