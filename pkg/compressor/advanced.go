package compressor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/gen2brain/go-fitz"

	"github.com/ifightcode/pdftools/models"
	"github.com/ifightcode/pdftools/pkg/builder"
	"github.com/ifightcode/pdftools/pkg/imageio"
)

const (
	// Render scale never exceeds 2x, regardless of how small a page is
	// relative to the target box.
	scaleCap = 2.0

	// Below this quality the page is quantized to a 256-color palette
	// before JPEG encoding, trading banding for size.
	quantizeThreshold = 50

	// Below this quality a mild blur is applied on top of quantization to
	// suppress JPEG blocking artifacts.
	blurThreshold = 40

	blurSigma     = 0.5
	paletteColors = 256
)

// Advanced rasterizes every page of a PDF, recompresses it as JPEG at the
// configured quality, and reassembles the pages into a new document.
type Advanced struct {
	Quality   int
	MaxWidth  int
	MaxHeight int
}

// PageInfo reports one processed page to the progress callback.
type PageInfo struct {
	PageNumber int
	PageCount  int
	JPEGBytes  int
}

// ScaleFor computes the render scale for a page of the given size in points.
// Pages larger than the target box are scaled down to fit; pages that fit are
// rendered at 1x. The result is capped at 2x.
func (a *Advanced) ScaleFor(pageWidth, pageHeight float64) float64 {
	scaleX := 1.0
	if pageWidth > float64(a.MaxWidth) {
		scaleX = float64(a.MaxWidth) / pageWidth
	}
	scaleY := 1.0
	if pageHeight > float64(a.MaxHeight) {
		scaleY = float64(a.MaxHeight) / pageHeight
	}

	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if scale > scaleCap {
		scale = scaleCap
	}
	return scale
}

// PreparePage applies the quality-dependent optimizations to a rendered page:
// below 50, median-cut quantization to 256 colors (expanded back to full
// color); below 40, an additional mild Gaussian blur. At quality 50 and above
// the page passes through with only the alpha channel dropped.
func (a *Advanced) PreparePage(img image.Image) image.Image {
	out := imageio.Flatten(img)

	if a.Quality < quantizeThreshold {
		q := quantize.MedianCutQuantizer{}
		pal := q.Quantize(make([]color.Color, 0, paletteColors), out)
		paletted := image.NewPaletted(out.Bounds(), pal)
		draw.Draw(paletted, out.Bounds(), out, out.Bounds().Min, draw.Src)
		out = imaging.Clone(paletted)
	}

	if a.Quality < blurThreshold {
		out = imaging.Blur(out, blurSigma)
	}

	return out
}

// Compress renders, recompresses and reassembles the whole document. Any
// page-render failure aborts the operation; no partial output is written.
// The final document is saved with the high structural preset.
func (a *Advanced) Compress(inputPath, outputPath string, progress func(PageInfo)) (Result, error) {
	res := Result{InputPath: inputPath, OutputPath: outputPath}

	info, err := os.Stat(inputPath)
	if err != nil {
		return res, fmt.Errorf("failed to stat input PDF: %w", err)
	}
	res.OriginalSize = info.Size()

	doc, err := fitz.New(inputPath)
	if err != nil {
		return res, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	out := builder.New()
	pageCount := doc.NumPage()

	for i := 0; i < pageCount; i++ {
		bounds, err := doc.Bound(i)
		if err != nil {
			return res, fmt.Errorf("failed to measure page %d: %w", i+1, err)
		}

		scale := a.ScaleFor(float64(bounds.Dx()), float64(bounds.Dy()))

		// go-fitz renders at a DPI relative to the 72-point page space, so
		// scale 1.0 maps to 72 DPI.
		img, err := doc.ImageDPI(i, 72.0*scale)
		if err != nil {
			return res, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}

		prepared := a.PreparePage(img)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, prepared, &jpeg.Options{Quality: a.Quality}); err != nil {
			return res, fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}

		pb := prepared.Bounds()
		if err := out.AddJPEGPage(buf.Bytes(), pb.Dx(), pb.Dy()); err != nil {
			return res, fmt.Errorf("failed to add page %d: %w", i+1, err)
		}

		if progress != nil {
			progress(PageInfo{PageNumber: i + 1, PageCount: pageCount, JPEGBytes: buf.Len()})
		}
	}

	if err := out.WriteFile(outputPath); err != nil {
		return res, err
	}

	// Resave with the most thorough structural options, in place.
	final, err := Compress(outputPath, outputPath, models.CompressionHigh)
	if err != nil {
		return res, err
	}
	res.CompressedSize = final.CompressedSize
	return res, nil
}
