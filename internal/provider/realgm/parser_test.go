package realgm

import (
	"testing"
)

var testClub = ClubConfig{
	TeamName:    "Paris Basketball",
	TeamDisplay: "Paris Basketball",
	Timezone:    "Europe/Paris",
	League:      "euroleague",
}

func TestParseScheduleTable(t *testing.T) {
	html := `<html><body><table>
	  <tr><th>Date</th><th>Time</th><th>Opponent</th><th>Result</th></tr>
	  <tr><td>11/13/2025</td><td>20:45</td><td>Valencia Basket</td><td>vs</td></tr>
	  <tr><td>11/20/2025</td><td>TBD</td><td>Real Madrid</td><td>@</td></tr>
	  <tr><td>not a date</td><td>20:00</td><td>Olympiacos</td><td>vs</td></tr>
	</table></body></html>`

	doc, err := ParseHTML(html)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	games, err := ParseScheduleTable(doc, testClub)
	if err != nil {
		t.Fatalf("ParseScheduleTable: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("parsed %d games, want 1 (TBD and dateless rows skipped)", len(games))
	}

	g := games[0]
	if g.DateKey != "2025-11-13" {
		t.Errorf("DateKey = %q, want 2025-11-13", g.DateKey)
	}
	// 20:45 in Paris is 14:45 Eastern in November.
	if g.Tipoff != "14:45:00" {
		t.Errorf("Tipoff = %q, want 14:45:00", g.Tipoff)
	}
	if g.HomeTeam.DisplayLabel != "Paris Basketball" {
		t.Errorf("HomeTeam = %q, want the club on a vs row", g.HomeTeam.DisplayLabel)
	}
	if g.AwayTeam.DisplayLabel != "Valencia Basket" {
		t.Errorf("AwayTeam = %q", g.AwayTeam.DisplayLabel)
	}
	if g.League != "euroleague" {
		t.Errorf("League = %q", g.League)
	}
	if g.GameKey == "" {
		t.Error("GameKey not set")
	}
}

func TestParseScheduleLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantErr  bool
		dateKey  string
		tipoff   string
		home     string
		away     string
		venue    string
	}{
		{
			name:    "home with venue and time",
			line:    "Nov 13, 2025 - vs Valencia Basket @ Halle Georges Carpentier Arena, 2:45 PM ET",
			dateKey: "2025-11-13",
			tipoff:  "14:45:00",
			home:    "Paris Basketball",
			away:    "Valencia Basket",
			venue:   "Halle Georges Carpentier Arena",
		},
		{
			name:    "home without time",
			line:    "Oct 1, 2025 - vs Valencia Basket @ Astroballe",
			dateKey: "2025-10-01",
			tipoff:  "",
			home:    "Paris Basketball",
			away:    "Valencia Basket",
			venue:   "Astroballe",
		},
		{
			name:    "away game",
			line:    "Nov 20, 2025 - @ Real Madrid, 3:00 PM ET",
			dateKey: "2025-11-20",
			tipoff:  "15:00:00",
			home:    "Real Madrid",
			away:    "Paris Basketball",
		},
		{
			name:    "no date",
			line:    "vs Valencia Basket, 2:45 PM ET",
			wantErr: true,
		},
		{
			name:    "no home/away marker",
			line:    "Nov 13, 2025 - Valencia Basket",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseScheduleLine(tt.line, testClub)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScheduleLine: %v", err)
			}
			if g.DateKey != tt.dateKey {
				t.Errorf("DateKey = %q, want %q", g.DateKey, tt.dateKey)
			}
			if g.Tipoff != tt.tipoff {
				t.Errorf("Tipoff = %q, want %q", g.Tipoff, tt.tipoff)
			}
			if g.HomeTeam.DisplayLabel != tt.home {
				t.Errorf("HomeTeam = %q, want %q", g.HomeTeam.DisplayLabel, tt.home)
			}
			if g.AwayTeam.DisplayLabel != tt.away {
				t.Errorf("AwayTeam = %q, want %q", g.AwayTeam.DisplayLabel, tt.away)
			}
			if g.Venue != tt.venue {
				t.Errorf("Venue = %q, want %q", g.Venue, tt.venue)
			}
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"20:45", 20, 45, true},
		{"8:45 PM", 20, 45, true},
		{"2:45 PM ET", 14, 45, true},
		{"20:45 CET", 20, 45, true},
		{"20:45:00", 20, 45, true},
		{"TBD", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		hour, minute, ok := parseClockTime(tt.in)
		if hour != tt.hour || minute != tt.minute || ok != tt.ok {
			t.Errorf("parseClockTime(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.in, hour, minute, ok, tt.hour, tt.minute, tt.ok)
		}
	}
}
