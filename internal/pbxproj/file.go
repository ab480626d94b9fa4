package pbxproj

import (
	"os"

	"pbxsort/internal/atomicfile"
	"pbxsort/internal/errors"
)

// SortFile canonicalizes path in place and reports whether the file changed.
// Already-sorted files are not rewritten at all. Every failure path leaves
// the on-disk bytes untouched.
func SortFile(path string, opts Options) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.NewSortError(errors.IOFailure, "failed to read project file", err).WithPath(path)
	}

	sorted, err := Sort(string(data), opts)
	if err != nil {
		if se, ok := err.(*errors.SortError); ok {
			return false, se.WithPath(path)
		}
		return false, err
	}
	if sorted == string(data) {
		return false, nil
	}

	if err := atomicfile.WriteFile(path, []byte(sorted), fileMode(path)); err != nil {
		return false, errors.NewSortError(errors.IOFailure, "failed to rewrite project file", err).WithPath(path)
	}
	return true, nil
}

// CheckFile reports whether path is already in canonical order. It never
// writes.
func CheckFile(path string, opts Options) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.NewSortError(errors.IOFailure, "failed to read project file", err).WithPath(path)
	}

	sorted, err := Check(string(data), opts)
	if err != nil {
		if se, ok := err.(*errors.SortError); ok {
			return false, se.WithPath(path)
		}
		return false, err
	}
	return sorted, nil
}

// fileMode preserves the original file's permissions across the rewrite.
func fileMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
