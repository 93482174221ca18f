// Package compressor shrinks PDF files, either by structural resave presets
// or by rasterizing every page into a recompressed JPEG.
package compressor

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ifightcode/pdftools/models"
)

// Result carries the before/after sizes of a compression run.
type Result struct {
	InputPath      string
	OutputPath     string
	OriginalSize   int64
	CompressedSize int64
}

// Reduction returns the size reduction as a percentage. Negative values mean
// the resave grew an already-optimized file.
func (r Result) Reduction() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(r.CompressedSize)/float64(r.OriginalSize)) * 100
}

// configuration maps a compression preset onto pdfcpu write options. The
// optimizer always garbage-collects unreferenced objects; the presets differ
// in how aggressively the writer compacts what remains:
//
//	low    - garbage collection and structure compaction only
//	medium - low, plus content packed into compressed object streams
//	high   - medium, plus a cross-reference stream layout
//
// low deliberately leaves stream packing off; it is the fast preset, not a
// bug to fix.
func configuration(level models.CompressionLevel) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.OPTIMIZE

	switch level {
	case models.CompressionLow:
		conf.WriteObjectStream = false
		conf.WriteXRefStream = false
	case models.CompressionMedium:
		conf.WriteObjectStream = true
		conf.WriteXRefStream = false
	case models.CompressionHigh:
		conf.WriteObjectStream = true
		conf.WriteXRefStream = true
	}
	return conf
}

// Compress resaves the PDF at inputPath to outputPath using the preset's
// structural-optimization options and reports the resulting sizes.
func Compress(inputPath, outputPath string, level models.CompressionLevel) (Result, error) {
	res := Result{InputPath: inputPath, OutputPath: outputPath}

	info, err := os.Stat(inputPath)
	if err != nil {
		return res, fmt.Errorf("failed to stat input PDF: %w", err)
	}
	res.OriginalSize = info.Size()

	if err := api.OptimizeFile(inputPath, outputPath, configuration(level)); err != nil {
		return res, fmt.Errorf("failed to optimize PDF: %w", err)
	}

	out, err := os.Stat(outputPath)
	if err != nil {
		return res, fmt.Errorf("failed to stat output PDF: %w", err)
	}
	res.CompressedSize = out.Size()
	return res, nil
}
