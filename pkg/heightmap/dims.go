package heightmap

import (
	"errors"
	"fmt"
	"math/bits"
)

// Dimension and grid errors.
var (
	ErrNotSquare          = errors.New("image width and height must be equal")
	ErrNotPowerOfTwo      = errors.New("image side length must be a power of two")
	ErrPixelCountMismatch = errors.New("pixel count mismatch")
	ErrGridSizeMismatch   = errors.New("grid size mismatch")
)

// ValidateDimensions checks that a raster is square with a power-of-two side
// length and returns the exponent n such that side == 2^n.
func ValidateDimensions(width, height int) (uint32, error) {
	if width != height {
		return 0, fmt.Errorf("%w: got %dx%d", ErrNotSquare, width, height)
	}
	if width <= 0 || width&(width-1) != 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, width)
	}

	exp := uint32(bits.TrailingZeros(uint(width)))

	// Cannot fail once the checks above pass; kept as an invariant assertion
	// on the exponent derivation.
	if (1<<exp)*(1<<exp) != width*height {
		return 0, fmt.Errorf("%w: found %d pixels, expected %d", ErrPixelCountMismatch, width*height, (1<<exp)*(1<<exp))
	}

	return exp, nil
}
