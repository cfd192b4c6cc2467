package namekit

// Resolver maps fan abbreviations and provider display variants onto
// canonical team labels. Lookups are exact: the forced-override table is
// consulted first, then the display-variant table, else identity. Substring
// handling is deliberately absent here; collision avoidance lives in the
// search scorer so alias resolution stays side-effect-free.
type Resolver struct {
	forced   map[string]string // Plain(alias) -> canonical display label
	variants map[string]string // Plain(source label) -> Plain(canonical label)
}

// NewResolver returns a resolver preloaded with the default tables.
func NewResolver() *Resolver {
	r := &Resolver{
		forced:   make(map[string]string, len(defaultOverrides)),
		variants: make(map[string]string, len(defaultVariants)),
	}
	for alias, canonical := range defaultOverrides {
		r.AddOverride(alias, canonical)
	}
	for source, canonical := range defaultVariants {
		r.AddVariant(source, canonical)
	}
	return r
}

// AddOverride registers a forced alias ("KU" → "Kansas").
func (r *Resolver) AddOverride(alias, canonical string) {
	if p := Plain(alias); p != "" {
		r.forced[p] = canonical
	}
}

// AddVariant registers a display-variant mapping between two spellings of
// the same team ("UNC Chapel Hill" → "North Carolina").
func (r *Resolver) AddVariant(source, canonical string) {
	sp, cp := Plain(source), Plain(canonical)
	if sp != "" && cp != "" {
		r.variants[sp] = cp
	}
}

// ResolveLabel returns the canonical display label for a forced alias.
// ok is false when the query is not in the forced table.
func (r *Resolver) ResolveLabel(query string) (label string, ok bool) {
	label, ok = r.forced[Plain(query)]
	return label, ok
}

// CanonicalKey collapses every spelling of one team onto a single key:
// normalize, strip the mascot, resolve aliases, then strip punctuation.
// CanonicalKey(CanonicalKey(x)) == CanonicalKey(x).
func (r *Resolver) CanonicalKey(label string) string {
	stripped := StripMascot(label)
	if canonical, ok := r.forced[Plain(stripped)]; ok {
		stripped = StripMascot(canonical)
	}
	p := Plain(stripped)
	if v, ok := r.variants[p]; ok {
		return v
	}
	return p
}

// defaultOverrides is the forced alias table: abbreviations and nicknames
// fans actually type, keyed loosely (Plain applied on insert).
var defaultOverrides = map[string]string{
	"ku":       "Kansas",
	"unc":      "North Carolina",
	"uk":       "Kentucky",
	"nova":     "Villanova",
	"cuse":     "Syracuse",
	"zags":     "Gonzaga",
	"msu":      "Michigan State",
	"osu":      "Ohio State",
	"uva":      "Virginia",
	"ut":       "Texas",
	"bama":     "Alabama",
	"ole miss": "Mississippi",
	"uconn":    "Connecticut",
	"umass":    "Massachusetts",
	"lsu":      "Louisiana State",
	"smu":      "Southern Methodist",
	"tcu":      "Texas Christian",
	"byu":      "Brigham Young",
	"vcu":      "Virginia Commonwealth",
	"ucf":      "Central Florida",
	"utep":     "UTEP",
	"unlv":     "UNLV",
	"usc":      "Southern California",
	"pitt":     "Pittsburgh",
	"wazzu":    "Washington State",
}

// defaultVariants maps provider spellings onto the canonical spelling.
// Both sides are stored in Plain form; historic names included.
var defaultVariants = map[string]string{
	"unc chapel hill": "north carolina",
	"miami fl":        "miami",
	"miami florida":   "miami",
	"st johns":        "saint johns",
	"st marys":        "saint marys",
	"st josephs":      "saint josephs",
	"st bonaventure":  "saint bonaventure",
	"southern cal":    "southern california",
	"cal":             "california",
	"uc berkeley":     "california",
	"nc state":        "north carolina state",
	"long island":     "liu",
	"detroit":         "detroit mercy",
	"ipfw":            "purdue fort wayne",
}
