// Package fsutil contains small filesystem helpers shared by the touch core
// and its configuration loader.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// FileExists reports whether something exists at path. A missing path, or a
// path whose parent is not a directory, is reported as not existing; any other
// stat failure (e.g. permission denied on a parent) is returned.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) || isNotDirError(err) {
		return false, nil
	}

	return false, err
}

// isNotDirError checks for ENOTDIR, e.g. "file.txt/child" where file.txt is a
// regular file.
func isNotDirError(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
