package heightmap

import (
	"fmt"
	"math"
)

// MinMax returns the smallest and largest values in grid. An empty grid
// yields (0, 0).
func MinMax(grid []float64) (min, max float64) {
	if len(grid) == 0 {
		return 0, 0
	}
	min, max = grid[0], grid[0]
	for _, v := range grid[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Quantize linearly rescales grid from [min, max] to 8-bit samples in
// [0, 255]. A zero range is treated as 1 so a flat grid maps to a uniform
// image instead of dividing by zero.
func Quantize(grid []float64, min, max float64) []uint8 {
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	out := make([]uint8, len(grid))
	for i, v := range grid {
		s := math.Round((v - min) / rng * 255)
		if s < 0 {
			s = 0
		} else if s > 255 {
			s = 255
		}
		out[i] = uint8(s)
	}
	return out
}

// Dequantize maps 8-bit samples to altitudes via sample/255 * scale + bias.
// This direction is exact for the 256 representable levels; quantization in
// the other direction is lossy.
func Dequantize(samples []uint8, scale, bias float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)/255*scale + bias
	}
	return out
}

// RasterFromGrid quantizes an altitude grid into a raster of the given
// dimensions. The grid length must match width*height exactly.
func RasterFromGrid(grid []float64, width, height int, min, max float64) (*Raster, error) {
	if len(grid) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d raster", ErrGridSizeMismatch, len(grid), width, height)
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    Quantize(grid, min, max),
	}, nil
}
