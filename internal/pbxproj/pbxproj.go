// Package pbxproj canonicalizes the sortable regions of an Xcode
// project.pbxproj file: named array regions and allow-listed block sections
// are deduplicated and re-emitted in natural order, the frameworks build
// phase is preserved byte-for-byte, and everything else passes through
// unchanged.
package pbxproj

import (
	"strings"

	"pbxsort/internal/natsort"
)

// ProtectedSection is the section kind whose element order carries link-order
// significance. It is always copied verbatim, allow-lists notwithstanding.
const ProtectedSection = "PBXFrameworksBuildPhase"

// DefaultKnownFiles are extension-less names classified as files rather than
// directories.
var DefaultKnownFiles = []string{"create_hash_table"}

// DefaultSortableSections are the block-section kinds whose records are safe
// to reorder.
var DefaultSortableSections = []string{"PBXBuildFile", "PBXFileReference"}

// Options control one sort pass. The zero value gives case-sensitive
// ordering with the default allow-lists.
type Options struct {
	// CaseInsensitive folds case in natural-key comparison and in the
	// known-files lookup.
	CaseInsensitive bool

	// KnownFiles overrides DefaultKnownFiles when non-nil.
	KnownFiles []string

	// SortableSections overrides DefaultSortableSections when non-nil.
	// ProtectedSection entries are ignored.
	SortableSections []string
}

// sorter carries the resolved options for one pass. Case mode is threaded
// here explicitly; nothing in this package holds comparison state globally.
type sorter struct {
	foldCase   bool
	knownFiles map[string]bool
	sortable   map[string]bool
}

func newSorter(opts Options) *sorter {
	s := &sorter{
		foldCase:   opts.CaseInsensitive,
		knownFiles: make(map[string]bool),
		sortable:   make(map[string]bool),
	}

	known := opts.KnownFiles
	if known == nil {
		known = DefaultKnownFiles
	}
	for _, name := range known {
		if s.foldCase {
			name = strings.ToLower(name)
		}
		s.knownFiles[name] = true
	}

	sections := opts.SortableSections
	if sections == nil {
		sections = DefaultSortableSections
	}
	for _, kind := range sections {
		if kind == ProtectedSection {
			continue
		}
		s.sortable[kind] = true
	}

	return s
}

func (s *sorter) keyFor(name string) natsort.Key {
	return natsort.KeyFor(name, s.foldCase)
}

// Sort returns the canonicalized text of one document. The input is split on
// "\n"; carriage returns stay attached to their lines, so CRLF content
// survives untouched in passthrough regions. Sort never modifies anything on
// disk.
func Sort(text string, opts Options) (string, error) {
	lines := strings.Split(text, "\n")
	out, err := newSorter(opts).run(lines)
	if err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}

// Check reports whether text is already in canonical order.
func Check(text string, opts Options) (bool, error) {
	sorted, err := Sort(text, opts)
	if err != nil {
		return false, err
	}
	return sorted == text, nil
}

// dedupLines drops exact duplicates, keeping the first occurrence.
func dedupLines(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}
