// Package convert wires the heightmap and formats codecs into the two
// conversion directions: image to world file ("pack") and world file to
// image ("unpack").
package convert

import (
	"fmt"

	"github.com/Faultbox/worldbin/pkg/formats"
	"github.com/Faultbox/worldbin/pkg/heightmap"
)

// PackOptions controls the image to world file direction.
type PackOptions struct {
	// ScaleFactor is the vertical span, in world units, covered by the full
	// 8-bit sample range. Stored in the world file as its scale metadata.
	ScaleFactor float64
	// HeightOffset is the additive bias applied to every altitude.
	HeightOffset float64
	// Smooth applies one box-filter pass after converting samples.
	Smooth bool
}

// Pack converts a raster heightmap into a world file. The raster must be
// square with a power-of-two side. The basement layer is filled with a copy
// of the surface; the format carries both but an image authors only one.
func Pack(r *heightmap.Raster, opts PackOptions) (*formats.WorldFile, error) {
	exp, err := heightmap.ValidateDimensions(r.Width, r.Height)
	if err != nil {
		return nil, err
	}

	alt := heightmap.Dequantize(r.Pix, opts.ScaleFactor, opts.HeightOffset)
	if opts.Smooth {
		alt = heightmap.Smooth(alt, r.Width, r.Height)
	}

	basement := make([]float64, len(alt))
	copy(basement, alt)

	return &formats.WorldFile{
		Version: formats.WorldVersion0_7_0,
		Map: &formats.WorldMap{
			MapSizeLg: [2]uint32{exp, exp},
			Scale:     opts.ScaleFactor,
			Alt:       alt,
			Basement:  basement,
		},
	}, nil
}

// Unpack renders the surface layer of a world file as a grayscale raster,
// rescaled over the observed altitude range, which is returned alongside.
func Unpack(wf *formats.WorldFile) (*heightmap.Raster, float64, float64, error) {
	if wf.Version != formats.WorldVersion0_7_0 || wf.Map == nil {
		return nil, 0, 0, fmt.Errorf("%w: %s", formats.ErrUnsupportedWorldVersion, wf.Version)
	}
	m := wf.Map

	min, max := heightmap.MinMax(m.Alt)
	r, err := heightmap.RasterFromGrid(m.Alt, m.Width(), m.Height(), min, max)
	if err != nil {
		return nil, 0, 0, err
	}
	return r, min, max, nil
}
