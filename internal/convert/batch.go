package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/worldbin/internal/logger"
)

// UnpackDir converts every world file in dir to a sibling PNG. A file that
// fails to convert is logged and skipped; the rest of the batch continues.
// Returns the number of files converted and skipped.
func UnpackDir(dir string) (converted, skipped int, err error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("reading directory: %w", err)
	}
	if !info.IsDir() {
		return 0, 0, fmt.Errorf("not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("reading directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !isWorldFileName(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		if _, _, err := UnpackFile(path, PNGPath(path)); err != nil {
			logger.Warn("skipping world file",
				zap.String("file", path),
				zap.Error(err))
			skipped++
			continue
		}
		converted++
	}

	return converted, skipped, nil
}

// isWorldFileName matches the extensions UnpackDir picks up.
func isWorldFileName(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, ".bin") || strings.HasSuffix(name, ".bin.zst")
}
