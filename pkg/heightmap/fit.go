package heightmap

import (
	"image"

	"github.com/nfnt/resize"
)

// FitPowerOfTwo downscales the raster to the largest power-of-two square
// not exceeding its shorter side. A raster that already conforms is
// returned unchanged.
func (r *Raster) FitPowerOfTwo() *Raster {
	side := r.Width
	if r.Height < side {
		side = r.Height
	}
	target := prevPowerOfTwo(side)
	if r.Width == r.Height && r.Width == target {
		return r
	}

	g := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	copy(g.Pix, r.Pix)
	return FromImage(resize.Resize(uint(target), uint(target), g, resize.Lanczos3))
}

// prevPowerOfTwo returns the largest power of two <= n, or 1 for n < 2.
func prevPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
