package espn

import (
	"encoding/json"
	"testing"
)

const scheduleFixture = `{
  "events": [
    {
      "id": "401745001",
      "date": "2025-11-15T01:00Z",
      "competitions": [
        {
          "timeValid": true,
          "venue": {"fullName": "Allen Fieldhouse"},
          "competitors": [
            {"homeAway": "home", "team": {"id": "2305", "displayName": "Kansas Jayhawks"}},
            {"homeAway": "away", "team": {"id": "150", "displayName": "Duke Blue Devils"}}
          ]
        }
      ]
    },
    {
      "id": "401745002",
      "date": "2025-11-20T05:00:00Z",
      "competitions": [
        {
          "timeValid": false,
          "competitors": [
            {"homeAway": "home", "team": {"id": "2305", "displayName": "Kansas Jayhawks"}},
            {"homeAway": "away", "team": {"id": "239", "displayName": "Baylor Bears"}}
          ]
        }
      ]
    },
    {
      "id": "401745003",
      "date": "not-a-date",
      "competitions": [{"competitors": []}]
    }
  ]
}`

func TestParseTeamSchedule(t *testing.T) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(scheduleFixture), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	games, err := NewParser(nil).ParseTeamSchedule(data)
	if err != nil {
		t.Fatalf("ParseTeamSchedule: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("parsed %d games, want 2 (malformed event skipped)", len(games))
	}

	g := games[0]
	if g.ID != "espn:401745001" {
		t.Errorf("ID = %q", g.ID)
	}
	// 2025-11-15 01:00 UTC is the evening of the 14th in the Eastern zone.
	if g.DateKey != "2025-11-14" {
		t.Errorf("DateKey = %q, want 2025-11-14", g.DateKey)
	}
	if g.Tipoff != "20:00:00" {
		t.Errorf("Tipoff = %q, want 20:00:00", g.Tipoff)
	}
	if g.Venue != "Allen Fieldhouse" {
		t.Errorf("Venue = %q", g.Venue)
	}
	if g.HomeTeam.DisplayLabel != "Kansas Jayhawks" || g.HomeTeam.PrimaryID() != "2305" {
		t.Errorf("HomeTeam = %+v", g.HomeTeam)
	}
	if g.AwayTeam.DisplayLabel != "Duke Blue Devils" || g.AwayTeam.PrimaryID() != "150" {
		t.Errorf("AwayTeam = %+v", g.AwayTeam)
	}
	if g.HomeTeam.CanonicalKey != "kansas" {
		t.Errorf("home CanonicalKey = %q, want kansas", g.HomeTeam.CanonicalKey)
	}
	if g.GameKey == "" {
		t.Error("GameKey not set")
	}

	tbd := games[1]
	if tbd.Tipoff != "" {
		t.Errorf("TBD game Tipoff = %q, want empty", tbd.Tipoff)
	}
	if tbd.DateKey != "2025-11-20" {
		t.Errorf("TBD game DateKey = %q, want 2025-11-20", tbd.DateKey)
	}
	if tbd.Venue != "" {
		t.Errorf("TBD game Venue = %q, want empty", tbd.Venue)
	}
}

func TestParseTeamDirectory(t *testing.T) {
	fixture := `{
	  "sports": [{"leagues": [{"teams": [
	    {"team": {"id": "2305", "displayName": "Kansas Jayhawks"}},
	    {"team": {"id": "150", "displayName": "Duke Blue Devils"}},
	    {"team": {"displayName": "No ID Club"}}
	  ]}]}]
	}`
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(fixture), &data); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	entries := ParseTeamDirectory(data)
	if len(entries) != 2 {
		t.Fatalf("parsed %d entries, want 2", len(entries))
	}
	if entries[0].ID != "2305" || entries[0].DisplayName != "Kansas Jayhawks" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2025-11-15T01:00Z", false},
		{"2025-11-15T01:00:00Z", false},
		{"2025-11-15T01:00:00-05:00", false},
		{"", true},
		{"garbage", true},
	}
	for _, tt := range tests {
		_, err := parseEventTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEventTime(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
