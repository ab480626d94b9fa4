// Package natsort implements natural-order comparison: digit runs inside a
// name compare by numeric value instead of character by character, so
// "file2" sorts before "file10".
package natsort

import "strings"

// token is a maximal run of digits or of non-digits.
type token struct {
	digits bool
	text   string
}

// Key is the precomputed, totally ordered sort key for one name.
// Keys compare tokenwise; see Compare for the exact rules.
type Key []token

// KeyFor tokenizes name into digit and non-digit runs. When foldCase is true,
// non-digit runs are lower-cased so comparison becomes case-insensitive.
func KeyFor(name string, foldCase bool) Key {
	if name == "" {
		return nil
	}

	key := make(Key, 0, 4)
	start := 0
	digits := isDigit(name[0])
	for i := 1; i <= len(name); i++ {
		if i == len(name) || isDigit(name[i]) != digits {
			text := name[start:i]
			if !digits && foldCase {
				text = strings.ToLower(text)
			}
			key = append(key, token{digits: digits, text: text})
			if i < len(name) {
				start = i
				digits = !digits
			}
		}
	}
	return key
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Compare returns -1, 0, or 1 ordering a against b.
// Rules, applied token by token:
//   - digit run vs digit run: numeric value first; equal values tie-break on
//     textual length, shorter first, so "1" < "01" < "001"
//   - digit run vs non-digit run: the digit run sorts first
//   - non-digit run vs non-digit run: lexical (already case-folded if the
//     keys were built that way)
//   - all shared tokens equal: the key with fewer tokens sorts first
func Compare(a, b Key) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		ta, tb := a[i], b[i]
		switch {
		case ta.digits && tb.digits:
			if c := compareDigitRuns(ta.text, tb.text); c != 0 {
				return c
			}
		case ta.digits:
			return -1
		case tb.digits:
			return 1
		default:
			if c := strings.Compare(ta.text, tb.text); c != 0 {
				return c
			}
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether name a sorts before name b.
func Less(a, b string, foldCase bool) bool {
	return Compare(KeyFor(a, foldCase), KeyFor(b, foldCase)) < 0
}

// compareDigitRuns compares two runs of ASCII digits as unbounded integers.
// Leading zeros are ignored for the numeric comparison; numerically equal
// runs order by textual length, shorter first.
func compareDigitRuns(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")

	// More significant digits means a larger value.
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}

	// Same value: fewer leading zeros sorts first.
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
