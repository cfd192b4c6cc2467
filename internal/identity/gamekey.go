// Package identity builds the composite keys that recognize "the same real
// game" across data providers that share no common ID space.
package identity

import (
	"strings"
	"time"

	"github.com/fortuna/courtside/internal/namekit"
)

const (
	// NoVenue is the venue slug sentinel when a provider omits the venue.
	NoVenue = "no-venue"
	// TimeTBD is the time slug sentinel when tipoff is not yet scheduled.
	TimeTBD = "tbd"
)

// timeLayouts are the tipoff spellings providers actually send.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04PM",
}

// BuildGameKey composes the order-independent key for one real-world game.
// The two team slugs are sorted, so the key is invariant under home/away
// swap and under which provider produced the record. The league tag is
// appended only when known; it narrows accidental collisions between
// same-named clubs in different competitions without being required.
func BuildGameKey(dateKey, timeKey, teamA, teamB, venue, league string) string {
	a := namekit.Slug(namekit.StripMascot(teamA))
	b := namekit.Slug(namekit.StripMascot(teamB))
	if b < a {
		a, b = b, a
	}

	v := namekit.Slug(venue)
	if v == "" {
		v = NoVenue
	}

	parts := []string{dateKey, TimeSlug(timeKey), a, b, v}
	if l := namekit.Slug(league); l != "" {
		parts = append(parts, l)
	}
	return strings.Join(parts, "__")
}

// TimeSlug canonicalizes a tipoff string to 24h HH:MM:SS, or TimeTBD when
// the time is missing or unparseable.
func TimeSlug(timeKey string) string {
	trimmed := strings.TrimSpace(timeKey)
	if trimmed == "" || strings.EqualFold(trimmed, TimeTBD) {
		return TimeTBD
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(trimmed)); err == nil {
			return t.Format("15:04:05")
		}
	}
	return TimeTBD
}
