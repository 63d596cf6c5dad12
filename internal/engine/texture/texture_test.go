package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// rawTGA builds an uncompressed 24-bit top-to-bottom TGA with the given
// BGR pixels.
func rawTGA(width, height int, bgr []byte) []byte {
	header := make([]byte, 18)
	header[2] = TGATypeUncompressed
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = 24
	header[17] = 0x20 // top-to-bottom
	return append(header, bgr...)
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1: red then blue, stored BGR.
	data := rawTGA(2, 1, []byte{0, 0, 255, 255, 0, 0})

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("pixel 0 = %v,%v,%v, want red", r>>8, g>>8, b>>8)
	}
	r, _, b, _ = img.At(1, 0).RGBA()
	if r != 0 || b>>8 != 255 {
		t.Errorf("pixel 1 not blue")
	}
}

func TestDecodeTGABottomUpFlips(t *testing.T) {
	header := rawTGA(1, 2, []byte{0, 0, 255, 255, 0, 0})
	header[17] = 0 // bottom-to-top ordering

	img, err := DecodeTGA(header)
	if err != nil {
		t.Fatal(err)
	}
	// First stored row (red) is the bottom row.
	r, _, _, _ := img.At(0, 1).RGBA()
	if r>>8 != 255 {
		t.Error("bottom-up TGA not flipped")
	}
}

func TestDecodeTGARejectsGarbage(t *testing.T) {
	if _, err := DecodeTGA([]byte{1, 2, 3}); err == nil {
		t.Error("short data accepted")
	}
	bad := rawTGA(1, 1, []byte{0, 0, 0})
	bad[2] = 1 // color-mapped
	if _, err := DecodeTGA(bad); err == nil {
		t.Error("color-mapped TGA accepted")
	}
}

func TestFitDownscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4096, 1024))
	got := Fit(img, MaxDimension)
	if got.Bounds().Dx() != MaxDimension {
		t.Errorf("width = %d, want %d", got.Bounds().Dx(), MaxDimension)
	}
	if got.Bounds().Dy() != MaxDimension/4 {
		t.Errorf("height = %d, want %d", got.Bounds().Dy(), MaxDimension/4)
	}
}

func TestFitKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	img.SetRGBA(10, 10, color.RGBA{R: 200, A: 255})

	got := Fit(img, MaxDimension)
	if got.Bounds().Dx() != 64 || got.Bounds().Dy() != 32 {
		t.Fatalf("small image resampled: %v", got.Bounds())
	}
	if got.RGBAAt(10, 10).R != 200 {
		t.Error("pixel lost in conversion")
	}
}

func TestCacheLoadsOnceAndCachesFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stencil.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	c := NewCache("")
	a, err := c.Get(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Get(path)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second Get did not return the cached image")
	}

	if _, err := c.Get(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("missing file loaded")
	}
	if _, err := c.Get(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("failure not cached")
	}
}

func TestCacheResolvesRelativePathsAgainstBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stencil.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	c := NewCache(dir)
	if _, err := c.Get("stencil.png"); err != nil {
		t.Fatalf("bare filename did not resolve against base dir: %v", err)
	}

	// Absolute paths bypass the base dir.
	if _, err := c.Get(path); err != nil {
		t.Fatalf("absolute path failed: %v", err)
	}
}
