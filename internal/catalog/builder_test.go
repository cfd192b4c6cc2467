package catalog

import (
	"testing"

	"github.com/fortuna/courtside/internal/namekit"
	"github.com/fortuna/courtside/internal/schedule"
)

func corpusOf(labels ...[2]string) schedule.Cache {
	cache := make(schedule.Cache)
	for i, pair := range labels {
		dateKey := "2025-11-01"
		cache[dateKey] = append(cache[dateKey], &schedule.GameRecord{
			ID:       string(rune('a' + i)),
			DateKey:  dateKey,
			HomeTeam: schedule.TeamRef{DisplayLabel: pair[0]},
			AwayTeam: schedule.TeamRef{DisplayLabel: pair[1]},
		})
	}
	return cache
}

func TestBuildKeepsLongestLabel(t *testing.T) {
	corpus := corpusOf(
		[2]string{"Norfolk State", "Duke"},
		[2]string{"Norfolk State Spartans", "Kansas"},
	)

	entries := NewBuilder(namekit.NewResolver()).Build(corpus)

	var norfolk *Entry
	for i := range entries {
		if entries[i].Canon == "norfolkstate" {
			norfolk = &entries[i]
		}
	}
	if norfolk == nil {
		t.Fatal("no catalog entry for norfolkstate")
	}
	if norfolk.Label != "Norfolk State Spartans" {
		t.Errorf("kept label %q, want the longer %q", norfolk.Label, "Norfolk State Spartans")
	}
	if len(norfolk.Tokens) != 3 {
		t.Errorf("tokens = %v, want 3 words", norfolk.Tokens)
	}
}

func TestBuildUnifiesSpellings(t *testing.T) {
	corpus := corpusOf(
		[2]string{"Kansas", "Duke"},
		[2]string{"Kansas Jayhawks", "Villanova"},
	)

	entries := NewBuilder(namekit.NewResolver()).Build(corpus)

	count := 0
	for _, e := range entries {
		if e.Canon == "kansas" {
			count++
			if e.Label != "Kansas Jayhawks" {
				t.Errorf("kansas label = %q, want %q", e.Label, "Kansas Jayhawks")
			}
		}
	}
	if count != 1 {
		t.Errorf("got %d kansas entries, want exactly 1", count)
	}
}

func TestBuildDeterministicOrder(t *testing.T) {
	corpus := corpusOf(
		[2]string{"Villanova", "Duke"},
		[2]string{"Kansas", "Gonzaga"},
	)
	b := NewBuilder(namekit.NewResolver())

	first := b.Build(corpus)
	second := b.Build(corpus)

	if len(first) != len(second) {
		t.Fatalf("rebuild changed entry count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Canon != second[i].Canon || first[i].Label != second[i].Label {
			t.Errorf("entry %d differs across rebuilds: %+v vs %+v", i, first[i], second[i])
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].Label > first[i].Label {
			t.Errorf("entries not sorted: %q before %q", first[i-1].Label, first[i].Label)
		}
	}
}
