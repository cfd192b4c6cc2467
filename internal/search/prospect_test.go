package search

import (
	"testing"

	"github.com/fortuna/courtside/internal/schedule"
)

func playersOf(names ...string) []schedule.TrackedPlayer {
	players := make([]schedule.TrackedPlayer, 0, len(names))
	for _, name := range names {
		players = append(players, schedule.TrackedPlayer{
			PlayerID: schedule.MakePlayerID(name, "Duke"),
			Name:     name,
			Team:     "Duke",
		})
	}
	return players
}

func TestRankProspectsLastName(t *testing.T) {
	players := playersOf("Cooper Flagg", "Cameron Boozer", "Darryn Peterson")

	results := RankProspects("flagg", players)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(results), results)
	}
	if results[0].Player.Name != "Cooper Flagg" {
		t.Errorf("top result %q, want Cooper Flagg", results[0].Player.Name)
	}
	if results[0].Score.WholeWord != 1 {
		t.Errorf("whole-word term = %d, want 1", results[0].Score.WholeWord)
	}
}

func TestRankProspectsReversedNameFields(t *testing.T) {
	// Some providers send "Last First"; sorted-word equality still counts
	// as an exact match.
	players := playersOf("Flagg Cooper")

	results := RankProspects("Cooper Flagg", players)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score.Exact != 1 {
		t.Errorf("reversed name fields: exact = %d, want 1", results[0].Score.Exact)
	}
}

func TestRankProspectsDeterministicTiebreak(t *testing.T) {
	players := playersOf("AJ Dybantsa", "AJ Johnson")

	results := RankProspects("aj", players)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Tuples differ only in length delta; the shorter name wins.
	if results[0].Player.Name != "AJ Johnson" {
		t.Errorf("top result %q, want AJ Johnson", results[0].Player.Name)
	}
}

func TestRankProspectsEmptyQuery(t *testing.T) {
	if got := RankProspects("  ", playersOf("Cooper Flagg")); got != nil {
		t.Errorf("blank query returned %+v, want nil", got)
	}
}
