package pbxproj

import (
	"fmt"
	"sort"
	"strings"

	"pbxsort/internal/errors"
	"pbxsort/internal/natsort"
)

// maxRecordLines caps how far a brace-balanced record may run before the
// input is declared malformed.
const maxRecordLines = 10000

// blockRecord is one identifier-keyed record of a block section. The prefix
// holds the blank/comment lines immediately above the record; they travel
// with it when records reorder.
type blockRecord struct {
	prefix []string
	body   []string
	text   string // body joined, used for duplicate detection
	dir    bool
	key    natsort.Key
}

// sortSectionLines reconstructs the records between a section's Begin and End
// lines, deduplicates them by full record text, and re-emits them ordered by
// extracted name with the same directory-before-file precedence the array
// sorter uses.
func (s *sorter) sortSectionLines(lines []string, kind string) ([]string, error) {
	records, trailing, err := splitRecords(lines, kind)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	unique := records[:0]
	for _, rec := range records {
		if seen[rec.text] {
			continue
		}
		seen[rec.text] = true
		unique = append(unique, rec)
	}

	for i := range unique {
		name := extractRecordName(unique[i].body, unique[i].text)
		unique[i].dir = s.isDirectory(name)
		unique[i].key = s.keyFor(name)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if a.dir != b.dir {
			return a.dir
		}
		return natsort.Compare(a.key, b.key) < 0
	})

	out := make([]string, 0, len(lines))
	for _, rec := range unique {
		out = append(out, rec.prefix...)
		out = append(out, rec.body...)
	}
	out = append(out, trailing...)
	return out, nil
}

// splitRecords walks the section body reconstructing records. A record opens
// at an identifier line; if that line leaves brace balance open, following
// lines accumulate until the balance returns to zero. Lines above a record
// that are not records themselves become its prefix; any left over after the
// last record are returned as trailing.
func splitRecords(lines []string, kind string) (records []blockRecord, trailing []string, err error) {
	var prefix []string
	i := 0
	for i < len(lines) {
		line := lines[i]
		if !reRecordStart.MatchString(line) {
			prefix = append(prefix, line)
			i++
			continue
		}

		body := []string{line}
		balance := braceDelta(line)
		i++
		for balance > 0 {
			if i >= len(lines) || len(body) >= maxRecordLines {
				return nil, nil, errors.NewSortError(errors.UnbalancedRecord,
					fmt.Sprintf("unbalanced braces in %s section record starting with %q", kind, strings.TrimSpace(line)), nil)
			}
			body = append(body, lines[i])
			balance += braceDelta(lines[i])
			i++
		}

		records = append(records, blockRecord{
			prefix: prefix,
			body:   body,
			text:   strings.Join(body, "\n"),
		})
		prefix = nil
	}
	return records, prefix, nil
}

// braceDelta counts open minus close braces on one line.
func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
