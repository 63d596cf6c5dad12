// Package snapshot writes viewport captures of the vessel model to disk as
// lossless WebP.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// Capture writes timestamped snapshot files into an output directory.
type Capture struct {
	outputDir string
	prefix    string
}

// NewCapture creates a snapshot writer. An empty outputDir writes into the
// working directory.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// SetOutputDir changes the output directory for later captures.
func (c *Capture) SetOutputDir(dir string) {
	c.outputDir = dir
}

// FromPixels saves a snapshot from raw framebuffer data. pixels must be RGBA
// with width*height*4 bytes. Rows are flipped vertically during the copy
// since OpenGL reads back bottom-up.
func (c *Capture) FromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y
		srcOffset := srcY * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return c.FromImage(img)
}

// FromImage saves a snapshot from an existing image.
func (c *Capture) FromImage(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := nativewebp.Encode(file, img, nil); err != nil {
		return "", fmt.Errorf("encoding WebP: %w", err)
	}

	return filename, nil
}

// Filename generates a timestamped snapshot filename without saving.
func (c *Capture) Filename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.webp", c.prefix, timestamp)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}
