// Package imageio decodes and encodes the raster formats the tool accepts:
// png, jpg, jpeg, gif, bmp, tiff and webp.
package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "golang.org/x/image/webp" // decode only
)

// jpegQuality is used when re-encoding a rotated JPEG in place.
const jpegQuality = 95

// webpQuality is used when re-encoding a rotated WEBP in place.
const webpQuality = 90

// SupportedExt reports whether a file extension (with or without the leading
// dot) names a format the tool can read and write. Matching is
// case-insensitive.
func SupportedExt(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png", "jpg", "jpeg", "gif", "bmp", "tiff", "webp":
		return true
	}
	return false
}

// Decode reads and decodes an image file. The format is sniffed from the
// content, not the extension, so a mislabeled file still decodes.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Encode writes an image to path in the format named by the path's extension.
func Encode(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	case ".gif":
		err = gif.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	case ".webp":
		err = webp.Encode(f, img, &webp.Options{Quality: webpQuality})
	default:
		err = fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// HasAlphaOrPalette reports whether an image carries an alpha channel or a
// color palette and therefore needs flattening before PDF placement.
func HasAlphaOrPalette(img image.Image) bool {
	switch img.(type) {
	case *image.Paletted, *image.Alpha, *image.Alpha16,
		*image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return true
	}
	return false
}

// Flatten converts any image to an opaque 3-channel representation by
// discarding the alpha channel. Paletted and alpha-bearing images come back
// as plain RGB; already-opaque images are cloned unchanged.
func Flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
