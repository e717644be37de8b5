// Package heightmap converts between altitude grids and grayscale raster
// images.
package heightmap

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Accept TIFF and BMP heightmaps alongside PNG.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Raster is a decoded image reduced to one 8-bit sample per pixel, taken
// from channel 0 (red/gray) of the source.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8 // row-major, index = y*Width + x
}

// DecodeImage decodes an image buffer into a raster. Any registered image
// container is accepted; PNG, TIFF and BMP are registered by this package.
func DecodeImage(data []byte) (*Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage samples channel 0 of every pixel into a raster.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := &Raster{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint8, b.Dx()*b.Dy()),
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			red, _, _, _ := img.At(x, y).RGBA()
			r.Pix[i] = uint8(red >> 8)
			i++
		}
	}
	return r
}

// EncodePNG encodes the raster as an opaque RGB PNG with the sample
// replicated into all three channels, using best compression. Encoding is
// deterministic: equal rasters always produce byte-identical output.
func EncodePNG(r *Raster) ([]byte, error) {
	if len(r.Pix) != r.Width*r.Height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d raster", ErrGridSizeMismatch, len(r.Pix), r.Width, r.Height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i, s := range r.Pix {
		img.Pix[i*4+0] = s
		img.Pix[i*4+1] = s
		img.Pix[i*4+2] = s
		img.Pix[i*4+3] = 0xff
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
