package pbxproj

import (
	"fmt"
	"strings"

	"pbxsort/internal/errors"
)

// run is the single top-to-bottom scan over the document. Each line is
// matched against the region openers in priority order: named arrays, the
// protected frameworks phase, allow-listed block sections. Everything else
// passes through byte-for-byte.
func (s *sorter) run(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		line := lines[i]

		if m := reFilesArrayStart.FindStringSubmatch(line); m != nil {
			var err error
			out, i, err = s.emitArray(out, lines, i, m[1], "files", true)
			if err != nil {
				return nil, err
			}
			continue
		}

		if m := reArrayStart.FindStringSubmatch(line); m != nil {
			var err error
			out, i, err = s.emitArray(out, lines, i, m[1], m[2], false)
			if err != nil {
				return nil, err
			}
			continue
		}

		// Link order is significant here; never reorder, regardless of any
		// allow-list.
		if strings.Contains(line, "Begin "+ProtectedSection+" section") {
			out, i = copyProtected(out, lines, i)
			continue
		}

		if m := reBeginSection.FindStringSubmatch(line); m != nil && s.sortable[m[1]] {
			var err error
			out, i, err = s.emitSection(out, lines, i, m[1])
			if err != nil {
				return nil, err
			}
			continue
		}

		out = append(out, line)
		i++
	}
	return out, nil
}

// emitArray consumes one array region starting at lines[start] and appends
// its sorted replacement to out. The end marker is the opening indentation
// plus ");" on a line of its own.
func (s *sorter) emitArray(out, lines []string, start int, indent, name string, filesArray bool) ([]string, int, error) {
	out = append(out, lines[start])
	entries, endLine, next, err := collectArray(lines, start+1, indent+");", name)
	if err != nil {
		return nil, 0, err
	}
	out = append(out, s.sortArrayEntries(entries, filesArray)...)
	out = append(out, endLine)
	return out, next, nil
}

// collectArray gathers raw entry lines until the end marker. The marker must
// begin the line exactly (indentation included) with nothing but whitespace
// after it, so nested arrays at other depths cannot terminate this one.
func collectArray(lines []string, start int, endMarker, arrayName string) (entries []string, endLine string, next int, err error) {
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, endMarker) && strings.TrimSpace(line[len(endMarker):]) == "" {
			return entries, line, i + 1, nil
		}
		entries = append(entries, line)
	}
	return nil, "", 0, errors.NewSortError(errors.UnterminatedRegion,
		fmt.Sprintf("unexpected end of file while parsing %s array", arrayName), nil)
}

// copyProtected copies the protected section verbatim through its End line.
// A missing End line copies through EOF; nothing is lost or reordered either
// way.
func copyProtected(out, lines []string, start int) ([]string, int) {
	end := "End " + ProtectedSection + " section"
	out = append(out, lines[start])
	i := start + 1
	for i < len(lines) {
		out = append(out, lines[i])
		i++
		if strings.Contains(lines[i-1], end) {
			break
		}
	}
	return out, i
}

// emitSection consumes one sortable block section and appends its sorted
// replacement to out.
func (s *sorter) emitSection(out, lines []string, start int, kind string) ([]string, int, error) {
	end := "End " + kind + " section"
	endIdx := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], end) {
			endIdx = i
			break
		}
	}
	if endIdx < 0 {
		return nil, 0, errors.NewSortError(errors.UnterminatedRegion,
			fmt.Sprintf("unexpected end of file while parsing %s section", kind), nil)
	}

	sorted, err := s.sortSectionLines(lines[start+1:endIdx], kind)
	if err != nil {
		return nil, 0, err
	}
	out = append(out, lines[start])
	out = append(out, sorted...)
	out = append(out, lines[endIdx])
	return out, endIdx + 1, nil
}
