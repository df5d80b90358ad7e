package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TempSuffix marks files that are still being written.
const TempSuffix = ".tmp"

// WriteFileAtomic writes data next to path and renames it into place, so an
// interrupted run never leaves a truncated export behind.
func WriteFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output folder: %w", err)
		}
	}

	tmp := path + TempSuffix
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if _, err := out.Write(data); err != nil {
		err = errors.Join(err, out.Close())
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
