// Package assemble wires the create_pdf command to the document builder.
package assemble

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ifightcode/pdftools/internal/common"
	"github.com/ifightcode/pdftools/pkg/builder"
	"github.com/ifightcode/pdftools/pkg/imagedir"
	"github.com/ifightcode/pdftools/pkg/imageio"
	"github.com/ifightcode/pdftools/pkg/storage"
)

// Action assembles the page-numbered images of a directory into one PDF.
// Files that do not match the *_page{N}_*.ext convention are excluded with a
// warning; per-image decode failures skip that page only. Zero successful
// pages is a failure and leaves no output behind.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	store := &storage.Storage{}

	dir := c.Args().First()
	if dir == "" {
		fmt.Println("Error: No directory specified")
		fmt.Println("Use 'pdftools help' for usage information")
		return nil
	}
	if !store.HasFile(dir) {
		fmt.Printf("Directory not found: %s\n", dir)
		return nil
	}

	files, err := imagedir.List(dir)
	if err != nil {
		logger.Error("failed to list directory", "dir", dir, "error", err)
		fmt.Printf("Error reading directory: %v\n", err)
		return nil
	}
	if len(files) == 0 {
		fmt.Printf("No image files found in: %s\n", dir)
		return nil
	}

	var pages []imagedir.PageImage
	for _, path := range files {
		name := filepath.Base(path)
		pageNum, ok := imagedir.ParsePageNumber(name)
		if !ok {
			fmt.Printf("Warning: Skipping file (doesn't match page pattern): %s\n", name)
			continue
		}
		pages = append(pages, imagedir.PageImage{PageNumber: pageNum, Path: path})
	}
	if len(pages) == 0 {
		fmt.Println("No images found matching the page numbering pattern (*_page{N}_*.ext)")
		fmt.Println("Expected pattern: filename_page1_something.png, filename_page2_something.jpg, etc.")
		return nil
	}

	imagedir.SortByPage(pages)

	output := c.String("output")
	if output == "" {
		output = common.DirBaseName(dir) + "_combined.pdf"
	}
	output = common.EnsurePDFSuffix(output)

	fmt.Printf("Creating PDF from %d images...\n", len(pages))
	fmt.Printf("Page range: %d to %d\n", pages[0].PageNumber, pages[len(pages)-1].PageNumber)

	doc := builder.New()
	for _, page := range pages {
		if err := addPage(doc, page); err != nil {
			logger.Error("failed to add page", "file", page.Path, "error", err)
			fmt.Printf("Error processing image %s: %v\n", filepath.Base(page.Path), err)
			continue
		}
		fmt.Printf("Added page %d: %s\n", page.PageNumber, filepath.Base(page.Path))
	}

	if doc.PageCount() == 0 {
		fmt.Println("No pages were successfully added to the PDF")
		fmt.Println("\nPDF creation failed!")
		return nil
	}

	if err := doc.WriteFile(output); err != nil {
		logger.Error("failed to write PDF", "output", output, "error", err)
		fmt.Printf("Error creating PDF: %v\n", err)
		// Do not leave a partial document behind.
		if rmErr := store.Remove(output); rmErr != nil {
			logger.Error("failed to remove partial output", "output", output, "error", rmErr)
		}
		fmt.Println("\nPDF creation failed!")
		return nil
	}

	fmt.Printf("\nPDF created successfully: %s\n", output)
	fmt.Printf("Total pages: %d\n", doc.PageCount())
	fmt.Printf("\nPDF creation complete! Created: %s\n", output)
	return nil
}

func addPage(doc *builder.Builder, page imagedir.PageImage) error {
	img, err := imageio.Decode(page.Path)
	if err != nil {
		return err
	}
	if imageio.HasAlphaOrPalette(img) {
		img = imageio.Flatten(img)
	}
	return doc.AddImagePage(img)
}
