// Package builder assembles raster images into a PDF, one full-bleed page
// per image.
package builder

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// Pixel dimensions are interpreted at screen resolution (96 DPI) and pages
// are sized in PDF points (72 per inch), so a 960px image becomes a 720pt
// page.
const pointsPerPixel = 72.0 / 96.0

// PixelsToPoints converts a pixel dimension to PDF points.
func PixelsToPoints(px int) float64 {
	return float64(px) * pointsPerPixel
}

// Builder accumulates pages and writes the document once at the end.
// A failed page leaves the builder usable for the remaining images.
type Builder struct {
	pdf   *gofpdf.Fpdf
	pages int
	seq   int
}

// New returns an empty document builder using point units.
func New() *Builder {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &Builder{pdf: pdf}
}

// PageCount returns the number of pages added so far.
func (b *Builder) PageCount() int {
	return b.pages
}

// AddImagePage encodes img as PNG and places it on a new page sized to the
// image's pixel dimensions.
func (b *Builder) AddImagePage(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode page image: %w", err)
	}
	bounds := img.Bounds()
	return b.addPage(buf.Bytes(), "PNG", bounds.Dx(), bounds.Dy())
}

// AddJPEGPage places already-encoded JPEG data on a new page sized to the
// given pixel dimensions.
func (b *Builder) AddJPEGPage(data []byte, width, height int) error {
	return b.addPage(data, "JPEG", width, height)
}

func (b *Builder) addPage(data []byte, imageType string, width, height int) error {
	pageW := PixelsToPoints(width)
	pageH := PixelsToPoints(height)

	// The name must be fresh on every attempt: a page that registers but
	// fails to place would otherwise leave its name bound to stale image data.
	b.seq++
	name := fmt.Sprintf("page-image-%d", b.seq)
	opts := gofpdf.ImageOptions{ImageType: imageType}

	b.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if b.pdf.Err() {
		err := b.pdf.Error()
		b.pdf.ClearError()
		return fmt.Errorf("failed to register page image: %w", err)
	}

	b.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pageW, Ht: pageH})
	b.pdf.ImageOptions(name, 0, 0, pageW, pageH, false, opts, 0, "")
	if b.pdf.Err() {
		err := b.pdf.Error()
		b.pdf.ClearError()
		return fmt.Errorf("failed to place page image: %w", err)
	}

	b.pages++
	return nil
}

// WriteFile writes the assembled document. Writing an empty document is an
// error; callers treat zero added pages as a failed operation.
func (b *Builder) WriteFile(path string) error {
	if b.pages == 0 {
		return fmt.Errorf("no pages were successfully added to the PDF")
	}
	if err := b.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
