// Package compress wires the compress and compress_adv commands to the
// compressor package.
package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ifightcode/pdftools/internal/common"
	"github.com/ifightcode/pdftools/models"
	"github.com/ifightcode/pdftools/pkg/compressor"
	"github.com/ifightcode/pdftools/pkg/storage"
)

// Action resaves a PDF with one of the structural compression presets.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	store := &storage.Storage{}

	pdfFile := c.Args().First()
	if pdfFile == "" {
		fmt.Println("Error: No PDF file specified")
		fmt.Println("Use 'pdftools help' for usage information")
		return nil
	}
	if !store.HasFile(pdfFile) {
		fmt.Printf("PDF file not found: %s\n", pdfFile)
		return nil
	}

	level, err := models.ParseCompressionLevel(c.String("compression"))
	if err != nil {
		fmt.Printf("Invalid compression level: %s. Use 'low', 'medium', or 'high'\n", c.String("compression"))
		return nil
	}

	output := c.String("output")
	if output == "" {
		output = derivedName(pdfFile, "_compressed")
	}
	output = common.EnsurePDFSuffix(output)

	originalSize, err := store.FileSize(pdfFile)
	if err != nil {
		logger.Error("failed to stat input", "pdf", pdfFile, "error", err)
		fmt.Printf("Error compressing PDF: %v\n", err)
		return nil
	}
	fmt.Printf("Original PDF size: %s\n", common.FormatMB(originalSize))
	fmt.Printf("Compressing PDF with %s compression...\n", level)

	res, err := compressor.Compress(pdfFile, output, level)
	if err != nil {
		logger.Error("compression failed", "pdf", pdfFile, "error", err)
		fmt.Printf("Error compressing PDF: %v\n", err)
		fmt.Println("\nPDF compression failed!")
		return nil
	}

	fmt.Printf("Compressed PDF size: %s\n", common.FormatMB(res.CompressedSize))
	fmt.Printf("Compression ratio: %.1f%% reduction\n", res.Reduction())
	fmt.Printf("Compressed PDF saved as: %s\n", output)
	fmt.Printf("\nPDF compression complete! Created: %s\n", output)
	return nil
}

// AdvancedAction rasterizes every page into a recompressed JPEG and
// reassembles the document. Parameters are validated before any work starts;
// a page-render failure aborts the whole run.
func AdvancedAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	store := &storage.Storage{}

	pdfFile := c.Args().First()
	if pdfFile == "" {
		fmt.Println("Error: No PDF file specified")
		fmt.Println("Use 'pdftools help' for usage information")
		return nil
	}
	if !store.HasFile(pdfFile) {
		fmt.Printf("PDF file not found: %s\n", pdfFile)
		return nil
	}

	quality := c.Int("quality")
	if quality < 1 || quality > 100 {
		fmt.Println("Quality must be between 1 and 100")
		return nil
	}
	maxWidth := c.Int("max-width")
	maxHeight := c.Int("max-height")
	if maxWidth < 200 || maxHeight < 200 {
		fmt.Println("Maximum width and height must be at least 200 pixels")
		return nil
	}

	output := c.String("output")
	if output == "" {
		output = derivedName(pdfFile, "_advanced_compressed")
	}
	output = common.EnsurePDFSuffix(output)

	originalSize, err := store.FileSize(pdfFile)
	if err != nil {
		logger.Error("failed to stat input", "pdf", pdfFile, "error", err)
		fmt.Printf("Error in advanced compression: %v\n", err)
		return nil
	}
	fmt.Printf("Original PDF size: %s\n", common.FormatMB(originalSize))
	fmt.Printf("Advanced compression settings: Quality=%d%%, Max size=%dx%d\n", quality, maxWidth, maxHeight)
	fmt.Println("Rendering pages as compressed images...")

	adv := &compressor.Advanced{Quality: quality, MaxWidth: maxWidth, MaxHeight: maxHeight}
	res, err := adv.Compress(pdfFile, output, func(page compressor.PageInfo) {
		fmt.Printf("Processed page %d/%d - Size: %s\n",
			page.PageNumber, page.PageCount, common.FormatKB(int64(page.JPEGBytes)))
	})
	if err != nil {
		logger.Error("advanced compression failed", "pdf", pdfFile, "error", err)
		fmt.Printf("Error in advanced compression: %v\n", err)
		// A failed run must not leave a half-written document around.
		if rmErr := store.Remove(output); rmErr != nil {
			logger.Error("failed to remove partial output", "output", output, "error", rmErr)
		}
		fmt.Println("\nAdvanced PDF compression failed!")
		return nil
	}

	fmt.Printf("Compressed PDF size: %s\n", common.FormatMB(res.CompressedSize))
	fmt.Printf("Compression ratio: %.1f%% reduction\n", res.Reduction())
	fmt.Printf("Advanced compressed PDF saved as: %s\n", output)
	fmt.Printf("\nAdvanced PDF compression complete! Created: %s\n", output)
	return nil
}

// derivedName inserts a suffix before the extension:
// report.pdf -> report_compressed.pdf.
func derivedName(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
