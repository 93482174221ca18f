// Package rotate wires the rotate command to the batch rotator.
package rotate

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ifightcode/pdftools/internal/common"
	"github.com/ifightcode/pdftools/models"
	"github.com/ifightcode/pdftools/pkg/imagedir"
	"github.com/ifightcode/pdftools/pkg/rotator"
	"github.com/ifightcode/pdftools/pkg/storage"
)

// Action rotates every image in a directory 90 degrees. Per-file failures are
// reported and skipped; the batch always runs to the end.
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

	direction, err := models.ParseDirection(c.String("direction"))
	if err != nil {
		fmt.Printf("Invalid direction: %s. Use 'clockwise' or 'anticlockwise'\n", c.String("direction"))
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

	overwrite := !c.Bool("no-overwrite")
	fmt.Printf("Rotating %d images %s by 90 degrees...\n", len(files), direction)

	r := &rotator.Rotator{Direction: direction, Overwrite: overwrite}
	rotated := r.RotateFiles(files, func(res rotator.Result) {
		if res.Err != nil {
			logger.Error("rotation failed", "file", res.Path, "error", res.Err)
			fmt.Printf("Error rotating %s: %v\n", filepath.Base(res.Path), res.Err)
			return
		}
		if overwrite {
			fmt.Printf("Rotated %s: %s\n", direction, filepath.Base(res.Output))
		} else {
			fmt.Printf("Rotated %s and saved as: %s\n", direction, filepath.Base(res.Output))
		}
	})

	fmt.Printf("\nRotation complete! %d images rotated.\n", rotated)
	return nil
}
