package canvas

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a raster file format.
type Format int

const (
	// FormatPNG is lossless PNG, written by gg.
	FormatPNG Format = iota
	// FormatJPEG is lossy JPEG, written by gg.
	FormatJPEG
	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP
	// FormatTIFF is deflate-compressed TIFF.
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case "":
		return 0, fmt.Errorf("canvas: %s has no file extension", path)
	default:
		return 0, fmt.Errorf("canvas: unsupported image format %q", ext)
	}
}
