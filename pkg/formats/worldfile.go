// Package formats provides codecs for world map file formats.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// World file format errors.
var (
	ErrUnsupportedWorldVersion = errors.New("unsupported world file version")
	ErrTruncatedWorldData      = errors.New("truncated world file data")
	ErrMalformedWorldField     = errors.New("malformed world file field")
)

// WorldVersion is the discriminant tag stored at the front of a world file.
// Later format revisions get new tags; readers must reject tags they do not
// know rather than guess at the payload layout.
type WorldVersion uint32

// Known versions.
const (
	WorldVersion0_7_0 WorldVersion = 0
)

// String returns a human-readable version name.
func (v WorldVersion) String() string {
	switch v {
	case WorldVersion0_7_0:
		return "0.7.0"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(v))
	}
}

// Maps larger than 2^16 per side are rejected outright; a conforming file
// that big would not fit in memory anyway.
const maxMapSizeLg = 16

// WorldMap is the payload of a version 0.7.0 world file. Both altitude
// layers are row-major grids of 2^MapSizeLg[0] * 2^MapSizeLg[1] samples.
type WorldMap struct {
	// MapSizeLg holds log2 of the map width and height. Storing exponents
	// instead of raw dimensions makes power-of-two sizes true by construction.
	MapSizeLg [2]uint32
	// Scale is the continent scale metadata carried alongside the grids.
	Scale float64
	// Alt is the surface altitude layer.
	Alt []float64
	// Basement is the lower/underground altitude layer.
	Basement []float64
}

// Width returns the map width in samples.
func (m *WorldMap) Width() int {
	return 1 << m.MapSizeLg[0]
}

// Height returns the map height in samples.
func (m *WorldMap) Height() int {
	return 1 << m.MapSizeLg[1]
}

// AltitudeRange returns the minimum and maximum surface altitude.
func (m *WorldMap) AltitudeRange() (min, max float64) {
	if len(m.Alt) == 0 {
		return 0, 0
	}
	min, max = m.Alt[0], m.Alt[0]
	for _, v := range m.Alt[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// WorldFile is the versioned envelope around a world map. Exactly one
// payload field is set, selected by Version.
type WorldFile struct {
	Version WorldVersion
	Map     *WorldMap
}

// ParseWorldFile parses a world file from raw bytes. Compressed containers
// (see IsCompressed) are decompressed transparently.
//
// Wire layout, all little-endian fixed-width:
//
//	u32 version tag
//	u32 map_size_lg.x, u32 map_size_lg.y
//	f64 continent scale
//	u64 alt length, then that many f64
//	u64 basement length, then that many f64
func ParseWorldFile(data []byte) (*WorldFile, error) {
	if IsCompressed(data) {
		var err error
		data, err = decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompressing world file: %w", err)
		}
	}

	r := bytes.NewReader(data)

	var tag uint32
	if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
		return nil, fmt.Errorf("%w: reading version tag", ErrTruncatedWorldData)
	}
	if WorldVersion(tag) != WorldVersion0_7_0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWorldVersion, WorldVersion(tag))
	}

	m := &WorldMap{}
	for i := range m.MapSizeLg {
		if err := binary.Read(r, binary.LittleEndian, &m.MapSizeLg[i]); err != nil {
			return nil, fmt.Errorf("%w: reading map size", ErrTruncatedWorldData)
		}
		if m.MapSizeLg[i] > maxMapSizeLg {
			return nil, fmt.Errorf("%w: map size exponent %d too large", ErrMalformedWorldField, m.MapSizeLg[i])
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &m.Scale); err != nil {
		return nil, fmt.Errorf("%w: reading scale", ErrTruncatedWorldData)
	}

	var err error
	if m.Alt, err = readAltArray(r, "alt"); err != nil {
		return nil, err
	}
	if m.Basement, err = readAltArray(r, "basement"); err != nil {
		return nil, err
	}

	want := m.Width() * m.Height()
	if len(m.Alt) != want {
		return nil, fmt.Errorf("%w: alt has %d samples, map size needs %d", ErrMalformedWorldField, len(m.Alt), want)
	}
	if len(m.Basement) != want {
		return nil, fmt.Errorf("%w: basement has %d samples, map size needs %d", ErrMalformedWorldField, len(m.Basement), want)
	}

	return &WorldFile{Version: WorldVersion(tag), Map: m}, nil
}

// readAltArray reads a u64 length prefix followed by that many f64 samples.
func readAltArray(r *bytes.Reader, field string) ([]float64, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("%w: reading %s length", ErrTruncatedWorldData, field)
	}
	if n > uint64(r.Len())/8 {
		return nil, fmt.Errorf("%w: %s declares %d samples, %d bytes remain", ErrTruncatedWorldData, field, n, r.Len())
	}
	vals := make([]float64, n)
	if err := binary.Read(r, binary.LittleEndian, vals); err != nil {
		return nil, fmt.Errorf("%w: reading %s samples", ErrTruncatedWorldData, field)
	}
	return vals, nil
}

// Marshal serializes the world file into its wire form. The output of two
// Marshal calls on equal values is byte-identical.
func (wf *WorldFile) Marshal() ([]byte, error) {
	if wf.Version != WorldVersion0_7_0 || wf.Map == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWorldVersion, wf.Version)
	}
	m := wf.Map
	for _, lg := range m.MapSizeLg {
		if lg > maxMapSizeLg {
			return nil, fmt.Errorf("%w: map size exponent %d too large", ErrMalformedWorldField, lg)
		}
	}
	want := m.Width() * m.Height()
	if len(m.Alt) != want || len(m.Basement) != want {
		return nil, fmt.Errorf("%w: layers have %d/%d samples, map size needs %d",
			ErrMalformedWorldField, len(m.Alt), len(m.Basement), want)
	}

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, uint32(wf.Version))
	binary.Write(buf, binary.LittleEndian, m.MapSizeLg)
	binary.Write(buf, binary.LittleEndian, m.Scale)
	binary.Write(buf, binary.LittleEndian, uint64(len(m.Alt)))
	binary.Write(buf, binary.LittleEndian, m.Alt)
	binary.Write(buf, binary.LittleEndian, uint64(len(m.Basement)))
	binary.Write(buf, binary.LittleEndian, m.Basement)
	return buf.Bytes(), nil
}

// LoadWorldFile parses a world file from disk.
func LoadWorldFile(path string) (*WorldFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file: %w", err)
	}
	return ParseWorldFile(data)
}

// SaveWorldFile serializes the world file to disk, compressing the
// container when compressed is set.
func SaveWorldFile(wf *WorldFile, path string, compressed bool) error {
	data, err := wf.Marshal()
	if err != nil {
		return err
	}
	if compressed {
		if data, err = Compress(data); err != nil {
			return fmt.Errorf("compressing world file: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
