package snapshot

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/webp"
)

func TestFromPixelsFlipsRows(t *testing.T) {
	c := NewCapture(t.TempDir(), "model")

	// 1x2 framebuffer: bottom row red, top row blue, bottom-up order.
	pixels := []byte{
		255, 0, 0, 255, // GL row 0 = bottom
		0, 0, 255, 255, // GL row 1 = top
	}

	path, err := c.FromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := webp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if b>>8 != 255 || r != 0 {
		t.Error("top image row is not the top framebuffer row")
	}
	r, _, _, _ = img.At(0, 1).RGBA()
	if r>>8 != 255 {
		t.Error("bottom image row is not the bottom framebuffer row")
	}
}

func TestFromPixelsRejectsShortBuffer(t *testing.T) {
	c := NewCapture(t.TempDir(), "model")
	if _, err := c.FromPixels(make([]byte, 7), 2, 2); err == nil {
		t.Error("short pixel buffer accepted")
	}
}

func TestFilenameLayout(t *testing.T) {
	c := NewCapture(filepath.Join("out", "shots"), "vessel")
	name := c.Filename()
	if !strings.HasPrefix(name, filepath.Join("out", "shots")+string(filepath.Separator)) {
		t.Errorf("filename %q not under output dir", name)
	}
	if !strings.HasSuffix(name, ".webp") {
		t.Errorf("filename %q missing extension", name)
	}
	if !strings.Contains(filepath.Base(name), "vessel_") {
		t.Errorf("filename %q missing prefix", name)
	}
}

func TestFromImageCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	c := NewCapture(dir, "model")

	if _, err := c.FromImage(image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 snapshot, found %d", len(entries))
	}
}
