// Package extract wires the extract command to the image extractor.
package extract

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ifightcode/pdftools/internal/common"
	"github.com/ifightcode/pdftools/pkg/extractor"
	"github.com/ifightcode/pdftools/pkg/storage"
)

// Action extracts embedded images from a PDF into {base}_images. Logical
// failures print a message and return nil; only flag parsing exits non-zero.
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

	outputDir := common.BaseName(pdfFile) + "_images"
	fmt.Printf("Extracting images from: %s\n", pdfFile)
	fmt.Printf("Output folder: %s\n", outputDir)

	ext := &extractor.Extractor{
		MinWidth:  c.Int("min-width"),
		MinHeight: c.Int("min-height"),
	}

	count, err := ext.ExtractImages(pdfFile, outputDir, func(res extractor.Result) {
		if res.Skipped {
			fmt.Printf("Skipped small image: %dx%d (minimum: %dx%d)\n",
				res.Width, res.Height, ext.MinWidth, ext.MinHeight)
			return
		}
		fmt.Printf("Extracted: %s (%dx%d)\n", filepath.Base(res.Path), res.Width, res.Height)
	})
	if err != nil {
		logger.Error("image extraction failed", "pdf", pdfFile, "error", err)
		fmt.Printf("Error extracting images: %v\n", err)
		return nil
	}

	fmt.Printf("\nExtraction complete! %d images extracted.\n", count)
	return nil
}
