package identity

import "testing"

func TestBuildGameKeySwapInvariant(t *testing.T) {
	k1 := BuildGameKey("2025-11-13", "19:00:00", "Duke", "Kansas", "Allen Fieldhouse", "")
	k2 := BuildGameKey("2025-11-13", "19:00:00", "Kansas", "Duke", "Allen Fieldhouse", "")
	if k1 != k2 {
		t.Errorf("home/away swap changed the key: %q vs %q", k1, k2)
	}
}

func TestBuildGameKeyMascotInvariant(t *testing.T) {
	k1 := BuildGameKey("2025-11-13", "19:00:00", "Kansas Jayhawks", "Duke Blue Devils", "Allen Fieldhouse", "")
	k2 := BuildGameKey("2025-11-13", "19:00:00", "Duke", "Kansas", "Allen Fieldhouse", "")
	if k1 != k2 {
		t.Errorf("provider mascot spelling changed the key: %q vs %q", k1, k2)
	}
}

func TestBuildGameKeySentinels(t *testing.T) {
	got := BuildGameKey("2025-11-13", "", "Duke", "Kansas", "", "")
	want := "2025-11-13__tbd__duke__kansas__no-venue"
	if got != want {
		t.Errorf("BuildGameKey = %q, want %q", got, want)
	}
}

func TestBuildGameKeyLeagueSuffix(t *testing.T) {
	plain := BuildGameKey("2025-11-13", "", "Valencia Basket", "ASVEL Basket", "", "")
	tagged := BuildGameKey("2025-11-13", "", "Valencia Basket", "ASVEL Basket", "", "EuroLeague")
	if plain == tagged {
		t.Error("league tag should change the key")
	}
	if want := plain + "__euroleague"; tagged != want {
		t.Errorf("tagged key = %q, want %q", tagged, want)
	}
}

func TestTimeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "tbd"},
		{"TBD", "tbd"},
		{"19:30", "19:30:00"},
		{"19:30:00", "19:30:00"},
		{"2:45 PM", "14:45:00"},
		{"2:45pm", "14:45:00"},
		{"sometime", "tbd"},
	}
	for _, tt := range tests {
		if got := TimeSlug(tt.in); got != tt.want {
			t.Errorf("TimeSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
