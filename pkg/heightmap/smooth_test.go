package heightmap

import (
	"math"
	"testing"
)

func TestSmooth_FlatGridUnchanged(t *testing.T) {
	grid := make([]float64, 16)
	for i := range grid {
		grid[i] = 42.5
	}

	out := Smooth(grid, 4, 4)

	if len(out) != len(grid) {
		t.Fatalf("length changed: %d != %d", len(out), len(grid))
	}
	for i, v := range out {
		if v != 42.5 {
			t.Errorf("cell %d: expected 42.5, got %v", i, v)
		}
	}
}

func TestSmooth_BorderAveragesInBoundsOnly(t *testing.T) {
	// On a 2x2 grid every cell's 3x3 window covers exactly the whole grid,
	// so each output cell is the mean of all four inputs.
	grid := []float64{-600, 400, -600, 400}

	out := Smooth(grid, 2, 2)

	for i, v := range out {
		if v != -100 {
			t.Errorf("cell %d: expected -100, got %v", i, v)
		}
	}
}

func TestSmooth_CenterMean(t *testing.T) {
	// 3x3 grid with a spike in the middle.
	grid := []float64{0, 0, 0, 0, 9, 0, 0, 0, 0}

	out := Smooth(grid, 3, 3)

	if out[4] != 1 {
		t.Errorf("center: expected 1, got %v", out[4])
	}
	// Corners see a 2x2 window containing the spike.
	if math.Abs(out[0]-9.0/4) > 1e-12 {
		t.Errorf("corner: expected 2.25, got %v", out[0])
	}
	// Edge midpoints see a 2x3 window containing the spike.
	if math.Abs(out[1]-9.0/6) > 1e-12 {
		t.Errorf("edge: expected 1.5, got %v", out[1])
	}
}

func TestSmooth_InputNotMutated(t *testing.T) {
	grid := []float64{1, 2, 3, 4}
	Smooth(grid, 2, 2)

	expected := []float64{1, 2, 3, 4}
	for i := range expected {
		if grid[i] != expected[i] {
			t.Errorf("input cell %d mutated: %v", i, grid[i])
		}
	}
}

func TestSmoothN_ZeroPassesCopies(t *testing.T) {
	grid := []float64{1, 2, 3, 4}

	out := SmoothN(grid, 2, 2, 0)

	for i := range grid {
		if out[i] != grid[i] {
			t.Errorf("cell %d: expected %v, got %v", i, grid[i], out[i])
		}
	}
	out[0] = 99
	if grid[0] != 1 {
		t.Error("SmoothN(0) did not copy the grid")
	}
}

func TestSmoothN_MatchesRepeatedSmooth(t *testing.T) {
	grid := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80}

	twice := Smooth(Smooth(grid, 3, 3), 3, 3)
	out := SmoothN(grid, 3, 3, 2)

	for i := range twice {
		if out[i] != twice[i] {
			t.Errorf("cell %d: expected %v, got %v", i, twice[i], out[i])
		}
	}
}
