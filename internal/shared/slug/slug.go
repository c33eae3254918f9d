// Package slug turns display names into the URL tokens used for routing and
// keeps them unique within a parent scope.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const MaxLen = 100

var (
	reDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reHyphens    = regexp.MustCompile(`-+`)
)

// Slugify lowercases, drops diacritics (é -> e), strips anything outside
// [a-z0-9\s-], turns whitespace runs into "-", collapses repeated "-" and trims
// them from both ends. The result never exceeds MaxLen runes.
func Slugify(name string) string {
	s := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	s = reDisallowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = reSpaces.ReplaceAllString(s, "-")
	s = reHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if rs := []rune(s); len(rs) > MaxLen {
		s = strings.Trim(string(rs[:MaxLen]), "-")
	}
	return s
}

// Deslugify only swaps hyphens for spaces; stripped characters are not restored.
func Deslugify(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// Normalize prepares a path segment for comparison against a stored slug.
func Normalize(segment string) string {
	return strings.ToLower(strings.TrimSpace(segment))
}
