package namekit

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Kansas  ", "kansas"},
		{"Dončić", "doncic"},
		{"Hüseyin", "huseyin"},
		{"ASVEL Basket", "asvel basket"},
		{"", ""},
		{"NORTH CAROLINA", "north carolina"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlainIdempotent(t *testing.T) {
	inputs := []string{
		"Kansas Jayhawks", "St. John's", "Texas A&M", "Dončić",
		"  North   Carolina  ", "ASVEL Basket — EuroLeague", "49ers", "",
	}
	for _, in := range inputs {
		once := Plain(in)
		twice := Plain(once)
		if once != twice {
			t.Errorf("Plain not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"St. John's", "stjohns"},
		{"Texas A&M", "texasam"},
		{"North Carolina", "northcarolina"},
		{"Joventut Badalona", "joventutbadalona"},
	}
	for _, tt := range tests {
		if got := Plain(tt.in); got != tt.want {
			t.Errorf("Plain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"North Carolina", "north-carolina"},
		{"St. John's", "st-john-s"},
		{"  Halle Georges Carpentier Arena ", "halle-georges-carpentier-arena"},
		{"---", ""},
		{"Texas A&M", "texas-a-m"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMascot(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kansas Jayhawks", "kansas"},
		{"Duke Blue Devils", "duke"},
		{"North Carolina Tar Heels", "north carolina"},
		{"Norfolk State Spartans", "norfolk state"},
		{"Alabama Crimson Tide", "alabama"},
		// no trailing mascot: untouched beyond normalization
		{"Kansas", "kansas"},
		{"Valencia Basket", "valencia basket"},
		// mascot mid-label must not strip
		{"Wildcats Academy", "wildcats academy"},
	}
	for _, tt := range tests {
		if got := StripMascot(tt.in); got != tt.want {
			t.Errorf("StripMascot(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGuardedMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Alabama", "Alabama", true},
		{"Alabama", "Alabama Crimson Tide", true},
		{"Alabama", "Alabama State", false},
		{"Alabama State", "Alabama", false},
		{"Texas", "Texas Tech", false},
		{"Norfolk State", "Norfolk State Spartans", true},
		{"Kansas", "Arkansas", false},
		{"Kansas", "Kansas State", false},
		{"Georgia", "Georgia Southern", false},
		{"Virginia", "West Virginia", false},
		{"Carolina", "North Carolina", false},
		{"", "Alabama", false},
	}
	for _, tt := range tests {
		if got := GuardedMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("GuardedMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
