// Package texture loads decal images and prepares them for GPU upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// MaxDimension caps decal textures. Stencil scans can be huge; anything past
// this is wasted on a patch a few hundred millimetres across.
const MaxDimension = 1024

// Load decodes a decal image by file extension and returns it as RGBA,
// downscaled to fit MaxDimension.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read decal image: %w", err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case ".webp":
		img, err = webp.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = DecodeTGA(data)
	default:
		return nil, fmt.Errorf("unsupported decal image format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return Fit(img, MaxDimension), nil
}

// Fit converts img to RGBA, downscaling so neither side exceeds max.
// Images already within bounds are only converted, never resampled.
func Fit(img image.Image, max int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= max && h <= max {
		rgba := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Copy(rgba, image.Point{}, img, b, xdraw.Src, nil)
		return rgba
	}

	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	rgba := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
	return rgba
}

// Cache memoizes decoded decal images by path. Failed loads are cached too,
// so a missing file does not hit the disk every frame. Relative paths are
// resolved against baseDir, so documents can name decals by bare filename.
type Cache struct {
	mu      sync.Mutex
	baseDir string
	images  map[string]*image.RGBA
	failed  map[string]error
}

// NewCache creates an empty cache. baseDir may be empty, in which case
// relative paths resolve against the working directory.
func NewCache(baseDir string) *Cache {
	return &Cache{
		baseDir: baseDir,
		images:  make(map[string]*image.RGBA),
		failed:  make(map[string]error),
	}
}

// Get returns the cached image for path, loading it on first use.
func (c *Cache) Get(path string) (*image.RGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[path]; ok {
		return img, nil
	}
	if err, ok := c.failed[path]; ok {
		return nil, err
	}

	file := path
	if c.baseDir != "" && !filepath.IsAbs(file) {
		file = filepath.Join(c.baseDir, file)
	}
	img, err := Load(file)
	if err != nil {
		c.failed[path] = err
		return nil, err
	}
	c.images[path] = img
	return img, nil
}
