package layout

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// GetBinaryPath returns the root folder of this project.
func GetBinaryPath() string {
	//nolint:dogsled
	_, b, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(b), "..")
}

// OpenPath opens an absolute path as is and a relative one from the working
// directory, falling back to the project root.
func OpenPath(path string) (*os.File, error) {
	if filepath.IsAbs(path) {
		slog.DebugContext(logCtx, "Opening absolute path", "path", path)

		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %s: %w", path, err)
		}

		return file, nil
	}

	file, err := os.Open(path)
	if err == nil {
		slog.DebugContext(logCtx, "Opening relative path", "path", path)

		return file, nil
	}

	fromRoot := filepath.Join(GetBinaryPath(), path)
	slog.DebugContext(logCtx, "Opening path from project root", "path", fromRoot)

	file, err = os.Open(fromRoot)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}
