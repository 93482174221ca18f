package builder

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/ifightcode/pdftools/pkg/extractor"
	"github.com/ifightcode/pdftools/pkg/imageio"
)

func pageImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func TestPixelsToPoints(t *testing.T) {
	cases := []struct {
		px   int
		want float64
	}{
		{96, 72},
		{960, 720},
		{0, 0},
		{48, 36},
	}
	for _, tc := range cases {
		if got := PixelsToPoints(tc.px); got != tc.want {
			t.Errorf("PixelsToPoints(%d) = %v, want %v", tc.px, got, tc.want)
		}
	}
}

func TestBuilder_WriteFile(t *testing.T) {
	b := New()
	if err := b.AddImagePage(pageImage(8, 6)); err != nil {
		t.Fatalf("AddImagePage() error = %v", err)
	}
	if err := b.AddImagePage(pageImage(4, 10)); err != nil {
		t.Fatalf("AddImagePage() error = %v", err)
	}
	if b.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", b.PageCount())
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestBuilder_AddJPEGPage(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, pageImage(10, 10), &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("failed to encode fixture JPEG: %v", err)
	}

	b := New()
	if err := b.AddJPEGPage(buf.Bytes(), 10, 10); err != nil {
		t.Fatalf("AddJPEGPage() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestBuilder_BadImageDoesNotPoisonBuilder(t *testing.T) {
	b := New()
	if err := b.AddJPEGPage([]byte("not a jpeg"), 10, 10); err == nil {
		t.Fatal("AddJPEGPage() expected error for invalid data, got nil")
	}
	if b.PageCount() != 0 {
		t.Fatalf("PageCount() = %d after failed page, want 0", b.PageCount())
	}

	// The builder recovers and accepts a good page afterwards.
	if err := b.AddImagePage(pageImage(5, 5)); err != nil {
		t.Fatalf("AddImagePage() after failure error = %v", err)
	}
	if b.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", b.PageCount())
	}
}

func solidImage(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBuilder_FailedPageDoesNotShadowLaterImages(t *testing.T) {
	b := New()
	if err := b.AddImagePage(solidImage(color.NRGBA{R: 255, A: 255})); err != nil {
		t.Fatalf("AddImagePage(red) error = %v", err)
	}
	if err := b.AddJPEGPage([]byte("not a jpeg"), 10, 10); err == nil {
		t.Fatal("AddJPEGPage() expected error for invalid data, got nil")
	}
	if err := b.AddImagePage(solidImage(color.NRGBA{B: 255, A: 255})); err != nil {
		t.Fatalf("AddImagePage(blue) error = %v", err)
	}

	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "doc.pdf")
	if err := b.WriteFile(pdfPath); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	// Round-trip through extraction: each page must carry its own image, not
	// a stale registration left behind by the failed attempt.
	e := &extractor.Extractor{MinWidth: 1, MinHeight: 1}
	outDir := filepath.Join(dir, "doc_images")
	if written, err := e.ExtractImages(pdfPath, outDir, nil); err != nil || written != 2 {
		t.Fatalf("ExtractImages() = %d, %v; want 2, nil", written, err)
	}

	wantRed := color.NRGBA{R: 255, A: 255}
	wantBlue := color.NRGBA{B: 255, A: 255}
	for _, tc := range []struct {
		name string
		want color.NRGBA
	}{
		{"doc_page1_img1.png", wantRed},
		{"doc_page2_img1.png", wantBlue},
	} {
		img, err := imageio.Decode(filepath.Join(outDir, tc.name))
		if err != nil {
			t.Fatalf("failed to decode %s: %v", tc.name, err)
		}
		r, g, bl, _ := img.At(10, 10).RGBA()
		wr, wg, wb, _ := tc.want.RGBA()
		if r != wr || g != wg || bl != wb {
			t.Errorf("%s center pixel = %d/%d/%d, want %d/%d/%d", tc.name, r, g, bl, wr, wg, wb)
		}
	}
}

func TestBuilder_WriteEmptyFails(t *testing.T) {
	b := New()
	if err := b.WriteFile(filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Error("WriteFile() expected error for document with no pages")
	}
}
