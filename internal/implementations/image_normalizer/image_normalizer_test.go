package imagenormalizer

import (
	"brainbox/internal/core/domain/knowledge"
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	return img
}

func TestToPNGFormats(t *testing.T) {
	src := testImage(40, 20)
	cases := []struct {
		id     string
		encode func(buf *bytes.Buffer) error
	}{
		{id: "png", encode: func(buf *bytes.Buffer) error { return png.Encode(buf, src) }},
		{id: "jpeg", encode: func(buf *bytes.Buffer) error { return jpeg.Encode(buf, src, nil) }},
		{id: "gif", encode: func(buf *bytes.Buffer) error { return gif.Encode(buf, src, nil) }},
		{id: "bmp", encode: func(buf *bytes.Buffer) error { return bmp.Encode(buf, src) }},
		{id: "tiff", encode: func(buf *bytes.Buffer) error { return tiff.Encode(buf, src, nil) }},
	}

	for _, testCase := range cases {
		t.Run(testCase.id, func(t *testing.T) {
			var buf bytes.Buffer
			require.Nil(t, testCase.encode(&buf))

			data, err := ToPNG(&buf)

			require.Nil(t, err)
			decoded, format, err := image.Decode(bytes.NewReader(data))
			require.Nil(t, err)
			assert.Equal(t, "png", format)
			assert.Equal(t, 40, decoded.Bounds().Dx())
			assert.Equal(t, 20, decoded.Bounds().Dy())
		})
	}
}

func TestToPNGScalesDown(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, png.Encode(&buf, testImage(MAX_DIMENSION*2, 100)))

	data, err := ToPNG(&buf)

	require.Nil(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.Nil(t, err)
	assert.Equal(t, MAX_DIMENSION, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestToPNGInvalidImage(t *testing.T) {
	_, err := ToPNG(bytes.NewReader([]byte("definitely not an image")))

	assert.ErrorIs(t, err, knowledge.ErrInvalidImage)
}

func TestScaledSize(t *testing.T) {
	cases := []struct {
		id             string
		width, height  int
		expectedWidth  int
		expectedHeight int
	}{
		{id: "small", width: 10, height: 10, expectedWidth: 10, expectedHeight: 10},
		{id: "wide", width: 4096, height: 1024, expectedWidth: 2048, expectedHeight: 512},
		{id: "tall", width: 1000, height: 4000, expectedWidth: 512, expectedHeight: 2048},
		{id: "thin", width: 100000, height: 1, expectedWidth: 2048, expectedHeight: 1},
	}
	for _, testCase := range cases {
		t.Run(testCase.id, func(t *testing.T) {
			width, height := scaledSize(testCase.width, testCase.height)
			assert.Equal(t, testCase.expectedWidth, width)
			assert.Equal(t, testCase.expectedHeight, height)
		})
	}
}
