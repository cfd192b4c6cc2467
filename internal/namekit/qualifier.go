package namekit

import "strings"

// qualifierTokens are words that, when they open the leftover of a longer
// team name, signal a different school entirely: "Alabama State" is not
// "Alabama", "Texas Tech" is not "Texas". Data, not code; extend as new
// collisions show up in provider feeds.
var qualifierTokens = map[string]bool{
	"state":      true,
	"st":         true,
	"tech":       true,
	"a&m":        true,
	"am":         true,
	"southern":   true,
	"university": true,
	"college":    true,
	"christian":  true,
	"wesleyan":   true,
	// directional qualifiers
	"north":    true,
	"south":    true,
	"east":     true,
	"west":     true,
	"central":  true,
	"northern": true,
	"eastern":  true,
	"western":  true,
	"new":      true,
}

// GuardedMatch reports whether two team labels refer to the same team under
// the qualifier-guarded substring rule. Labels match when they normalize
// equal, or when the shorter appears in the longer on word boundaries and
// the first leftover word is not a qualifier token. "Alabama" matches
// "Alabama Crimson Tide" but never "Alabama State".
func GuardedMatch(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	shorter, longer := na, nb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if !containsWholeWords(longer, shorter) {
		return false
	}

	remainder := strings.TrimSpace(strings.Replace(longer, shorter, "", 1))
	first := remainder
	if i := strings.IndexByte(remainder, ' '); i >= 0 {
		first = remainder[:i]
	}
	return !qualifierTokens[first]
}

// containsWholeWords reports whether needle occurs in haystack aligned on
// word boundaries. Plain substring search would let "kansas" hit inside
// "arkansas".
func containsWholeWords(haystack, needle string) bool {
	if haystack == needle {
		return true
	}
	if strings.HasPrefix(haystack, needle+" ") {
		return true
	}
	if strings.HasSuffix(haystack, " "+needle) {
		return true
	}
	return strings.Contains(haystack, " "+needle+" ")
}
