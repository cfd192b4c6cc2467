package namekit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes and removes combining marks, so "Dončić" and
// "Doncic" normalize to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a label, strips diacritics, and trims surrounding
// whitespace. Applying it twice yields the same result as applying it once.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

// Plain normalizes and then drops every character outside [a-z0-9].
// This is the comparison form used for alias tables and player IDs.
func Plain(s string) string {
	n := Normalize(s)
	var b strings.Builder
	b.Grow(len(n))
	for _, r := range n {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slug normalizes and rewrites every non-alphanumeric run as a single
// hyphen, with no leading or trailing hyphens. Used for game keys.
func Slug(s string) string {
	n := Normalize(s)
	var b strings.Builder
	b.Grow(len(n))
	pendingHyphen := false
	for _, r := range n {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// StripMascot removes a known mascot suffix from a team label. The mascot
// must appear as a trailing whole word ("Kansas Jayhawks" → "kansas");
// mascots embedded mid-label are left alone. Returns the normalized label.
func StripMascot(s string) string {
	n := Normalize(s)
	for _, m := range mascotSuffixes {
		if strings.HasSuffix(n, " "+m) {
			return strings.TrimSpace(strings.TrimSuffix(n, m))
		}
	}
	return n
}
