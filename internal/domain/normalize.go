package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Denylist holds every character stripped from raw dictionary rows before
// they are split into a headword and a definition.
const Denylist = ";,.-\"[]:/!&?*~=`+#¡–^${}\\|<>£"

// IsDenylisted reports whether r is one of the Denylist characters.
func IsDenylisted(r rune) bool {
	return strings.ContainsRune(Denylist, r)
}

// CleanText removes all Denylist characters from s and lowercases the result.
func CleanText(s string) string {
	t := transform.Chain(
		runes.Remove(runes.Predicate(IsDenylisted)),
		cases.Lower(language.Und),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Removal and lowercasing never fail on valid input; fall back to the
		// plain-strings path for malformed UTF-8.
		return strings.ToLower(strings.Map(func(r rune) rune {
			if IsDenylisted(r) {
				return -1
			}
			return r
		}, s))
	}
	return out
}

// NormalizeText prepares text for lookup and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
