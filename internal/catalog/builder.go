// Package catalog builds the searchable team catalog from the known game
// corpus.
package catalog

import (
	"sort"
	"strings"

	"github.com/fortuna/courtside/internal/namekit"
	"github.com/fortuna/courtside/internal/schedule"
)

// Entry is one searchable team: its canonical key, the best display label
// seen for it, and the label's words for whole-word scoring.
type Entry struct {
	Canon  string   `json:"canon"`
	Label  string   `json:"label"`
	Tokens []string `json:"tokens"`
}

// Builder scans game corpora into catalogs. Rebuilds are a single pass over
// the corpus, cheap enough to run after every cache mutation.
type Builder struct {
	aliases *namekit.Resolver
}

// NewBuilder creates a catalog builder using the given alias resolver.
func NewBuilder(aliases *namekit.Resolver) *Builder {
	if aliases == nil {
		aliases = namekit.NewResolver()
	}
	return &Builder{aliases: aliases}
}

// Build walks every game in the corpus, not just a visible date window, and
// keeps the longest display label per canonical key ("Norfolk State
// Spartans" beats "Norfolk State"). Entries come back sorted by label so
// output order never depends on map iteration.
func (b *Builder) Build(corpus schedule.Cache) []Entry {
	best := make(map[string]string)
	for _, games := range corpus {
		for _, g := range games {
			b.consider(best, g.HomeTeam.DisplayLabel)
			b.consider(best, g.AwayTeam.DisplayLabel)
		}
	}

	entries := make([]Entry, 0, len(best))
	for canon, label := range best {
		entries = append(entries, Entry{
			Canon:  canon,
			Label:  label,
			Tokens: strings.Fields(label),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })
	return entries
}

func (b *Builder) consider(best map[string]string, label string) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return
	}
	canon := b.aliases.CanonicalKey(trimmed)
	if canon == "" {
		return
	}
	current, ok := best[canon]
	if !ok || len(trimmed) > len(current) {
		best[canon] = trimmed
	}
}
