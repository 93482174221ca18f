// Package imagedir discovers image files in a directory and parses the
// page-numbering convention used to order them.
package imagedir

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/ifightcode/pdftools/pkg/imageio"
)

// pagePattern matches the naming convention consumed by PDF assembly:
// anything, "_page<digits>_", anything, then a supported image extension.
// Example: deed_page1_img1.png
var pagePattern = regexp.MustCompile(`(?i)^.*_page(\d+)_.*\.(png|jpg|jpeg|gif|bmp|tiff|webp)$`)

// PageImage associates a parsed page number with the file it came from.
type PageImage struct {
	PageNumber int
	Path       string
}

// List returns the image files directly inside dir (non-recursive), in
// directory order. Extensions are matched case-insensitively.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageio.SupportedExt(filepath.Ext(entry.Name())) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// ParsePageNumber extracts the page number from a filename following the
// *_page{N}_*.ext convention. The second return is false when the name does
// not match.
func ParsePageNumber(filename string) (int, bool) {
	m := pagePattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Unreachable for \d+ short of overflow; treat as non-matching.
		return 0, false
	}
	return n, true
}

// SortByPage orders page images ascending by page number. The sort is stable:
// duplicate page numbers keep their original file order and both stay in the
// result.
func SortByPage(pages []PageImage) {
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].PageNumber < pages[j].PageNumber
	})
}
