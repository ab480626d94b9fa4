package pbxproj

import (
	"sort"

	"pbxsort/internal/natsort"
)

// arrayEntry is one raw line of an array region together with its
// precomputed sort key.
type arrayEntry struct {
	line string
	dir  bool
	key  natsort.Key
}

// sortArrayEntries deduplicates and orders the raw lines of one array region.
// Non-files arrays put directory-like entries before file-like ones; files
// arrays order purely by natural key. The sort is stable, so entries with
// equal keys keep their input order.
func (s *sorter) sortArrayEntries(lines []string, filesArray bool) []string {
	unique := dedupLines(lines)

	entries := make([]arrayEntry, len(unique))
	for i, line := range unique {
		name := extractEntryName(line, filesArray)
		entries[i] = arrayEntry{
			line: line,
			dir:  !filesArray && s.isDirectory(name),
			key:  s.keyFor(name),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.dir != b.dir {
			return a.dir
		}
		return natsort.Compare(a.key, b.key) < 0
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.line
	}
	return out
}
