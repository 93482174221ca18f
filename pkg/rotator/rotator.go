// Package rotator rotates every image in a directory by 90 degrees.
package rotator

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ifightcode/pdftools/models"
	"github.com/ifightcode/pdftools/pkg/imagedir"
	"github.com/ifightcode/pdftools/pkg/imageio"
)

// Rotator batch-rotates images. When Overwrite is set the rotated image
// replaces the original file; otherwise it is written alongside as
// {name}_rotated_{direction}{ext}.
type Rotator struct {
	Direction models.RotationDirection
	Overwrite bool
}

// Result reports the outcome for a single file. Err is set when the file
// could not be decoded or encoded; such files do not stop the batch.
type Result struct {
	Path   string
	Output string
	Err    error
}

// RotateDirectory rotates every supported image directly inside dir and
// returns the number successfully rotated. A per-file failure is reported
// through the result callback and the rest of the batch continues.
func (r *Rotator) RotateDirectory(dir string, report func(Result)) (int, error) {
	files, err := imagedir.List(dir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no image files found in: %s", dir)
	}
	return r.RotateFiles(files, report), nil
}

// RotateFiles rotates the given files one by one. Failing files are counted
// out but never stop the batch.
func (r *Rotator) RotateFiles(files []string, report func(Result)) int {
	rotated := 0
	for _, path := range files {
		res := r.rotateFile(path)
		if res.Err == nil {
			rotated++
		}
		if report != nil {
			report(res)
		}
	}
	return rotated
}

func (r *Rotator) rotateFile(path string) Result {
	res := Result{Path: path}

	img, err := imageio.Decode(path)
	if err != nil {
		res.Err = err
		return res
	}

	rotated := r.Rotate(img)

	out := path
	if !r.Overwrite {
		ext := filepath.Ext(path)
		name := strings.TrimSuffix(path, ext)
		out = fmt.Sprintf("%s_rotated_%s%s", name, r.Direction, ext)
	}

	if err := imageio.Encode(out, rotated); err != nil {
		res.Err = err
		return res
	}
	res.Output = out
	return res
}

// Rotate turns a single image 90 degrees in the configured direction,
// expanding the canvas so nothing is cropped.
func (r *Rotator) Rotate(img image.Image) *image.NRGBA {
	if r.Direction == models.Clockwise {
		// imaging rotates counter-clockwise; 270 CCW == 90 CW.
		return imaging.Rotate270(img)
	}
	return imaging.Rotate90(img)
}
