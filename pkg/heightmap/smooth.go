package heightmap

// Smooth applies one pass of a 3x3 mean filter over a row-major altitude
// grid. Border cells average over their in-bounds neighbors only; there is
// no wraparound and no edge replication. The input grid is not modified.
func Smooth(grid []float64, width, height int) []float64 {
	out := make([]float64, len(grid))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := 0.0
			count := 0.0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					sum += grid[ny*width+nx]
					count++
				}
			}
			out[y*width+x] = sum / count
		}
	}
	return out
}

// SmoothN applies n passes of the filter. n == 0 returns a copy of grid.
func SmoothN(grid []float64, width, height, n int) []float64 {
	out := make([]float64, len(grid))
	copy(out, grid)
	for i := 0; i < n; i++ {
		out = Smooth(out, width, height)
	}
	return out
}
