package imagenormalizer

import (
	"brainbox/internal/core/domain/knowledge"
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MAX_DIMENSION bounds the longer side of a normalized image.
const MAX_DIMENSION = 2048

// ToPNG decodes any supported image format (png, jpeg, gif, webp, bmp, tiff),
// flattens it onto a white background, scales it down to MAX_DIMENSION and
// encodes it as PNG. Undecodable input yields knowledge.ErrInvalidImage.
func ToPNG(r io.Reader) ([]byte, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", knowledge.ErrInvalidImage, err)
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", knowledge.ErrInvalidImage, format)
	}

	width, height := scaledSize(bounds.Dx(), bounds.Dy())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func scaledSize(width, height int) (int, int) {
	if width <= MAX_DIMENSION && height <= MAX_DIMENSION {
		return width, height
	}
	if width >= height {
		return MAX_DIMENSION, max(1, height*MAX_DIMENSION/width)
	}
	return max(1, width*MAX_DIMENSION/height), MAX_DIMENSION
}
