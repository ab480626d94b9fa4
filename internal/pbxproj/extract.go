package pbxproj

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Array declarations whose entry order is not build-significant.
	reArrayStart = regexp.MustCompile(`^(\s*)(children|buildConfigurations|targets|packageProductDependencies|packageReferences)\s*=\s*\(\s*$`)

	// files arrays carry a build-phase annotation in the entry comment and
	// sort without directory precedence.
	reFilesArrayStart = regexp.MustCompile(`^(\s*)files\s*=\s*\(\s*$`)

	// Entry forms: 24-hex object identifier plus a descriptive comment.
	//   A1B2C3D4E5F6789012345678 /* Name */,
	//   A1B2C3D4E5F6789012345678 /* Name in Sources */,
	reChildEntry = regexp.MustCompile(`^\s*[0-9A-Fa-f]{24}\s+/\*\s*(.+?)\s*\*/,$`)
	reFileEntry  = regexp.MustCompile(`^\s*[0-9A-Fa-f]{24}\s+/\*\s*(.+?)\s+in\s+`)

	// Block-section record opener: identifier, optional comment, "=",
	// optional open brace.
	reRecordStart = regexp.MustCompile(`^\s*[0-9A-Fa-f]{24}(?:\s+/\*\s*(.+?)\s*\*/)?\s*=\s*(\{)?`)

	reBeginSection = regexp.MustCompile(`Begin ([A-Za-z0-9_]+) section`)

	reNameAssign = regexp.MustCompile(`name\s*=\s*"([^"]*)"`)
	rePathAssign = regexp.MustCompile(`path\s*=\s*"([^"]*)"`)
)

// extractEntryName pulls the display name out of one array entry line.
// Returns "" when the line does not match; callers treat that as the
// deliberate empty-key fallback, never an error.
func extractEntryName(line string, filesArray bool) string {
	re := reChildEntry
	if filesArray {
		re = reFileEntry
	}
	if m := re.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// extractRecordName recovers the display name for a block-section record via
// the fallback chain: opener comment, name assignment, path assignment, first
// non-blank line, whole record text. The chain is total: it never fails.
func extractRecordName(body []string, text string) string {
	if m := reRecordStart.FindStringSubmatch(body[0]); m != nil && m[1] != "" {
		return m[1]
	}
	if m := reNameAssign.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := rePathAssign.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	for _, line := range body {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return text
}

// isDirectory classifies a display name. A name with a real extension (a dot
// followed by at least one non-dot character at the end) is a file; so is an
// extension-less name on the known-files allow-list. Everything else is a
// directory. Unextractable (empty) names are files so they sort last among
// equals rather than jumping the directory group.
func (s *sorter) isDirectory(name string) bool {
	if name == "" {
		return false
	}
	if ext := filepath.Ext(name); ext != "" && ext != "." {
		return false
	}
	lookup := name
	if s.foldCase {
		lookup = strings.ToLower(lookup)
	}
	return !s.knownFiles[lookup]
}
