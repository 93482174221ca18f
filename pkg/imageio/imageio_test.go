package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 20), B: 100, A: 255})
		}
	}
	return img
}

func TestSupportedExt(t *testing.T) {
	for _, ext := range []string{".png", "png", ".JPG", "jpeg", ".GIF", "bmp", ".tiff", "WEBP"} {
		if !SupportedExt(ext) {
			t.Errorf("SupportedExt(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{".txt", ".pdf", "", ".jpg.bak", "tif"} {
		if SupportedExt(ext) {
			t.Errorf("SupportedExt(%q) = true, want false", ext)
		}
	}
}

func TestEncodeDecode_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	src := testImage(12, 8)

	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff"} {
		path := filepath.Join(dir, "img"+ext)
		if err := Encode(path, src); err != nil {
			t.Fatalf("Encode(%s) error = %v", ext, err)
		}

		decoded, err := Decode(path)
		if err != nil {
			t.Fatalf("Decode(%s) error = %v", ext, err)
		}
		b := decoded.Bounds()
		if b.Dx() != 12 || b.Dy() != 8 {
			t.Errorf("roundtrip %s dimensions = %dx%d, want 12x8", ext, b.Dx(), b.Dy())
		}
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.xyz")
	if err := Encode(path, testImage(2, 2)); err == nil {
		t.Error("Encode() expected error for unsupported extension, got nil")
	}
}

func TestDecode_Corrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := Decode(path); err == nil {
		t.Error("Decode() expected error for corrupt file, got nil")
	}
}

func TestFlatten_DropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	img.Set(1, 1, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	flat := Flatten(img)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if a := flat.NRGBAAt(x, y).A; a != 0xff {
				t.Errorf("Flatten() pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
	// Color channels are kept, not composited.
	if c := flat.NRGBAAt(0, 0); c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("Flatten() pixel (0,0) = %+v, want RGB 10/20/30", c)
	}
}

func TestHasAlphaOrPalette(t *testing.T) {
	paletted := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black, color.White})
	cases := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), true},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 1, 1)), true},
		{"paletted", paletted, true},
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), false},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio420), false},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 1, 1)), false},
	}
	for _, tc := range cases {
		if got := HasAlphaOrPalette(tc.img); got != tc.want {
			t.Errorf("HasAlphaOrPalette(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
