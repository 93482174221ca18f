// Package extractor pulls embedded raster images out of a PDF and writes the
// ones that pass the size filter as PNG files.
package extractor

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ifightcode/pdftools/internal/common"
	"github.com/ifightcode/pdftools/pkg/imageio"
)

// Extractor holds the size filter applied to every embedded image.
// Images smaller than the thresholds in either dimension are skipped.
type Extractor struct {
	MinWidth  int
	MinHeight int
}

// Result describes one embedded image found during extraction. Skipped
// results carry the dimensions that failed the filter and no path.
type Result struct {
	PageNumber int
	ImageIndex int
	Width      int
	Height     int
	Path       string
	Skipped    bool
}

// ExtractImages walks every page of the PDF at pdfPath, decodes each embedded
// raster image and writes qualifying ones into outputDir as
// {base}_page{P}_img{I}.png with 1-based page and per-page image numbers.
// The progress callback fires once per image, written or skipped. The
// returned count is the number of files written.
func (e *Extractor) ExtractImages(pdfPath, outputDir string, progress func(Result)) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := common.BaseName(pdfPath)

	written := 0
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageImages, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
		if err != nil {
			return written, fmt.Errorf("failed to extract images from page %d: %w", pageNr, err)
		}

		// ExtractPageImages returns a map keyed by object number; order the
		// images by object number so indices are deterministic.
		objNrs := make([]int, 0, len(pageImages))
		for objNr := range pageImages {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for i, objNr := range objNrs {
			res, err := e.saveImage(pageImages[objNr], outputDir, base, pageNr, i+1)
			if err != nil {
				return written, err
			}
			if !res.Skipped {
				written++
			}
			if progress != nil {
				progress(res)
			}
		}
	}

	return written, nil
}

func (e *Extractor) saveImage(img model.Image, outputDir, base string, pageNr, imgIndex int) (Result, error) {
	decoded, _, err := image.Decode(img)
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode image %d on page %d: %w", imgIndex, pageNr, err)
	}

	bounds := decoded.Bounds()
	res := Result{
		PageNumber: pageNr,
		ImageIndex: imgIndex,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}

	if res.Width < e.MinWidth || res.Height < e.MinHeight {
		res.Skipped = true
		return res, nil
	}

	// PNG has no CMYK color model; flatten CMYK to plain RGB first.
	if _, ok := decoded.(*image.CMYK); ok {
		decoded = imageio.Flatten(decoded)
	}

	name := fmt.Sprintf("%s_page%d_img%d.png", base, pageNr, imgIndex)
	res.Path = filepath.Join(outputDir, name)

	out, err := os.Create(res.Path)
	if err != nil {
		return res, fmt.Errorf("failed to create %s: %w", res.Path, err)
	}
	defer out.Close()

	if err := png.Encode(out, decoded); err != nil {
		return res, fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return res, nil
}
