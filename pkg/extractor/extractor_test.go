package extractor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/ifightcode/pdftools/pkg/builder"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 2), G: uint8(y * 2), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode fixture JPEG: %v", err)
	}
	return buf.Bytes()
}

// fixturePDF builds a two-page document: a large image on page 1 and a small
// one on page 2.
func fixturePDF(t *testing.T, path string) {
	t.Helper()
	b := builder.New()
	if err := b.AddJPEGPage(encodeJPEG(t, 100, 80), 100, 80); err != nil {
		t.Fatalf("failed to add large page: %v", err)
	}
	if err := b.AddJPEGPage(encodeJPEG(t, 10, 10), 10, 10); err != nil {
		t.Fatalf("failed to add small page: %v", err)
	}
	if err := b.WriteFile(path); err != nil {
		t.Fatalf("failed to write fixture PDF: %v", err)
	}
}

func TestExtractImages(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "scan.pdf")
	fixturePDF(t, pdfPath)

	outputDir := filepath.Join(dir, "scan_images")
	e := &Extractor{MinWidth: 50, MinHeight: 50}

	var results []Result
	written, err := e.ExtractImages(pdfPath, outputDir, func(res Result) {
		results = append(results, res)
	})
	if err != nil {
		t.Fatalf("ExtractImages() error = %v", err)
	}

	if written != 1 {
		t.Fatalf("ExtractImages() wrote %d images, want 1", written)
	}
	if len(results) != 2 {
		t.Fatalf("progress reported %d results, want 2", len(results))
	}

	kept := results[0]
	if kept.Skipped {
		t.Fatalf("page 1 image was skipped: %+v", kept)
	}
	if kept.PageNumber != 1 || kept.ImageIndex != 1 {
		t.Errorf("kept image numbering = page %d img %d, want page 1 img 1", kept.PageNumber, kept.ImageIndex)
	}
	if kept.Width != 100 || kept.Height != 80 {
		t.Errorf("kept image dimensions = %dx%d, want 100x80", kept.Width, kept.Height)
	}
	wantName := "scan_page1_img1.png"
	if filepath.Base(kept.Path) != wantName {
		t.Errorf("kept image path = %s, want basename %s", kept.Path, wantName)
	}
	if _, err := os.Stat(kept.Path); err != nil {
		t.Errorf("written image missing: %v", err)
	}

	skipped := results[1]
	if !skipped.Skipped {
		t.Errorf("page 2 image should have been skipped: %+v", skipped)
	}
	if skipped.Width != 10 || skipped.Height != 10 {
		t.Errorf("skipped image dimensions = %dx%d, want 10x10", skipped.Width, skipped.Height)
	}
	if skipped.Path != "" {
		t.Errorf("skipped image has a path: %s", skipped.Path)
	}
}

func TestExtractImages_MissingFile(t *testing.T) {
	e := &Extractor{MinWidth: 50, MinHeight: 50}
	if _, err := e.ExtractImages(filepath.Join(t.TempDir(), "absent.pdf"), t.TempDir(), nil); err == nil {
		t.Error("ExtractImages() expected error for missing PDF, got nil")
	}
}
