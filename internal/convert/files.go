package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/worldbin/internal/logger"
	"github.com/Faultbox/worldbin/pkg/formats"
	"github.com/Faultbox/worldbin/pkg/heightmap"
)

// FileOptions extends PackOptions with file-level behavior.
type FileOptions struct {
	PackOptions
	// Fit downscales non-conforming images to a power-of-two square
	// instead of rejecting them.
	Fit bool
	// Compress writes a zstd-compressed world file.
	Compress bool
}

// PackFile converts an image file into a world file on disk.
func PackFile(inPath, outPath string, opts FileOptions) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	raster, err := heightmap.DecodeImage(data)
	if err != nil {
		return err
	}
	if opts.Fit {
		raster = raster.FitPowerOfTwo()
	}

	wf, err := Pack(raster, opts.PackOptions)
	if err != nil {
		return err
	}

	if err := formats.SaveWorldFile(wf, outPath, opts.Compress); err != nil {
		return err
	}

	logger.Info("packed image",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Int("side", raster.Width),
		zap.Uint32("exponent", wf.Map.MapSizeLg[0]),
		zap.Float64("scale", opts.ScaleFactor),
		zap.Float64("offset", opts.HeightOffset))
	return nil
}

// UnpackFile converts a world file into a PNG heightmap on disk and returns
// the observed altitude range.
func UnpackFile(inPath, outPath string) (min, max float64, err error) {
	wf, err := formats.LoadWorldFile(inPath)
	if err != nil {
		return 0, 0, err
	}

	raster, min, max, err := Unpack(wf)
	if err != nil {
		return 0, 0, err
	}

	data, err := heightmap.EncodePNG(raster)
	if err != nil {
		return 0, 0, err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return 0, 0, fmt.Errorf("writing image: %w", err)
	}

	logger.Info("unpacked world file",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Int("side", raster.Width),
		zap.Float64("min_alt", min),
		zap.Float64("max_alt", max))
	return min, max, nil
}

// PNGPath derives the output image path for a world file: the .bin (or
// .bin.zst) extension is replaced by .png.
func PNGPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if strings.HasSuffix(strings.ToLower(base), ".bin") {
		base = base[:len(base)-len(".bin")]
	}
	return base + ".png"
}

// BinPath derives the output world file path for an image, honoring the
// compression setting.
func BinPath(path string, compressed bool) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if compressed {
		return base + ".bin.zst"
	}
	return base + ".bin"
}
