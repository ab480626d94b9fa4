// Package discover resolves command-line paths to project.pbxproj files.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pbxsort/internal/errors"
)

// ProjectFileName is the only filename the sorter operates on.
const ProjectFileName = "project.pbxproj"

// Resolve maps one argument to a project file path. A .xcodeproj bundle
// resolves to the project.pbxproj inside it; anything not named
// project.pbxproj is rejected with NotAProjectFile so the caller can skip it
// with a warning.
func Resolve(path string) (string, error) {
	if strings.HasSuffix(filepath.Base(path), ".xcodeproj") {
		path = filepath.Join(path, ProjectFileName)
	}
	if filepath.Base(path) != ProjectFileName {
		return "", errors.NewSortError(errors.NotAProjectFile, "not an Xcode project file", nil).WithPath(path)
	}
	return path, nil
}

// Find walks root recursively and returns every project.pbxproj beneath it,
// in walk order.
func Find(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == ProjectFileName {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewSortError(errors.IOFailure, "failed to scan directory", err).WithPath(root)
	}
	return found, nil
}

// IsDir reports whether path names an existing directory that is not a
// .xcodeproj bundle; those are the paths Find should walk.
func IsDir(path string) bool {
	if strings.HasSuffix(filepath.Base(path), ".xcodeproj") {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
