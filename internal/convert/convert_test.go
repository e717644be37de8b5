package convert

import (
	"errors"
	"testing"

	"github.com/Faultbox/worldbin/pkg/formats"
	"github.com/Faultbox/worldbin/pkg/heightmap"
)

func TestPack_AltitudeMapping(t *testing.T) {
	// Red samples 0 and 255 with scale 1000 and offset -600 land on the
	// extremes -600 and 400.
	r := &heightmap.Raster{Width: 2, Height: 2, Pix: []uint8{0, 255, 0, 255}}

	wf, err := Pack(r, PackOptions{ScaleFactor: 1000, HeightOffset: -600})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	expected := []float64{-600, 400, -600, 400}
	for i, v := range expected {
		if wf.Map.Alt[i] != v {
			t.Errorf("alt[%d]: expected %v, got %v", i, v, wf.Map.Alt[i])
		}
	}
	if wf.Map.MapSizeLg != [2]uint32{1, 1} {
		t.Errorf("expected exponents [1 1], got %v", wf.Map.MapSizeLg)
	}
	if wf.Map.Scale != 1000 {
		t.Errorf("expected scale 1000, got %v", wf.Map.Scale)
	}
}

func TestPack_BasementDuplicatesSurface(t *testing.T) {
	r := &heightmap.Raster{Width: 2, Height: 2, Pix: []uint8{10, 20, 30, 40}}

	wf, err := Pack(r, PackOptions{ScaleFactor: 100, HeightOffset: 0})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	for i := range wf.Map.Alt {
		if wf.Map.Basement[i] != wf.Map.Alt[i] {
			t.Errorf("basement[%d] differs from alt: %v != %v", i, wf.Map.Basement[i], wf.Map.Alt[i])
		}
	}
	// Separate backing arrays: mutating one layer must not leak into the other.
	wf.Map.Alt[0] = 999
	if wf.Map.Basement[0] == 999 {
		t.Error("basement aliases the alt slice")
	}
}

func TestPack_Smooth(t *testing.T) {
	// Every cell of a 2x2 grid averages over the whole grid after one pass.
	r := &heightmap.Raster{Width: 2, Height: 2, Pix: []uint8{0, 255, 0, 255}}

	wf, err := Pack(r, PackOptions{ScaleFactor: 1000, HeightOffset: -600, Smooth: true})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	for i, v := range wf.Map.Alt {
		if v != -100 {
			t.Errorf("alt[%d]: expected -100, got %v", i, v)
		}
	}
}

func TestPack_RejectsNonPowerOfTwo(t *testing.T) {
	r := &heightmap.Raster{Width: 100, Height: 100, Pix: make([]uint8, 100*100)}

	_, err := Pack(r, PackOptions{ScaleFactor: 1000})
	if !errors.Is(err, heightmap.ErrNotPowerOfTwo) {
		t.Errorf("expected ErrNotPowerOfTwo, got %v", err)
	}
}

func TestPack_RejectsNonSquare(t *testing.T) {
	r := &heightmap.Raster{Width: 4, Height: 8, Pix: make([]uint8, 32)}

	_, err := Pack(r, PackOptions{ScaleFactor: 1000})
	if !errors.Is(err, heightmap.ErrNotSquare) {
		t.Errorf("expected ErrNotSquare, got %v", err)
	}
}

func TestPackUnpack_FlatMap(t *testing.T) {
	// An all-zero raster with scale 100 and offset -50 packs to a flat -50
	// map; unpacking a flat map yields an all-zero image.
	r := &heightmap.Raster{Width: 4, Height: 4, Pix: make([]uint8, 16)}

	wf, err := Pack(r, PackOptions{ScaleFactor: 100, HeightOffset: -50})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	out, min, max, err := Unpack(wf)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if min != -50 || max != -50 {
		t.Errorf("expected range [-50, -50], got [%v, %v]", min, max)
	}
	for i, s := range out.Pix {
		if s != 0 {
			t.Errorf("pixel %d: expected 0, got %d", i, s)
		}
	}
}

func TestPackUnpack_ReproducesQuantizedSamples(t *testing.T) {
	orig := &heightmap.Raster{Width: 2, Height: 2, Pix: []uint8{0, 85, 170, 255}}

	wf, err := Pack(orig, PackOptions{ScaleFactor: 1000, HeightOffset: -600})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	out, _, _, err := Unpack(wf)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	for i := range orig.Pix {
		if out.Pix[i] != orig.Pix[i] {
			t.Errorf("pixel %d: expected %d, got %d", i, orig.Pix[i], out.Pix[i])
		}
	}
}

func TestUnpack_Range(t *testing.T) {
	wf := &formats.WorldFile{
		Version: formats.WorldVersion0_7_0,
		Map: &formats.WorldMap{
			MapSizeLg: [2]uint32{1, 1},
			Alt:       []float64{-600, 400, -100, -100},
			Basement:  []float64{-600, 400, -100, -100},
		},
	}

	out, min, max, err := Unpack(wf)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if min != -600 || max != 400 {
		t.Errorf("expected range [-600, 400], got [%v, %v]", min, max)
	}
	if out.Pix[0] != 0 || out.Pix[1] != 255 {
		t.Errorf("extremes should map to 0 and 255, got %d and %d", out.Pix[0], out.Pix[1])
	}
	if out.Pix[2] != 128 {
		t.Errorf("midpoint should map to 128, got %d", out.Pix[2])
	}
}

func TestUnpack_RejectsUnknownVersion(t *testing.T) {
	wf := &formats.WorldFile{Version: formats.WorldVersion(3)}

	_, _, _, err := Unpack(wf)
	if !errors.Is(err, formats.ErrUnsupportedWorldVersion) {
		t.Errorf("expected ErrUnsupportedWorldVersion, got %v", err)
	}
}
