package namekit

import "sort"

// mascotSuffixes is the data table behind StripMascot. Entries are stored
// normalized (lowercase, no diacritics); multi-word mascots are listed in
// full so "Duke Blue Devils" strips to "duke", not "duke blue".
// Sorted longest-first at init so compound names win over their tails.
var mascotSuffixes = []string{
	// multi-word
	"blue devils", "tar heels", "crimson tide", "demon deacons",
	"fighting irish", "fighting illini", "red raiders", "red storm",
	"blue jays", "blue raiders", "blue hens", "golden eagles",
	"golden gophers", "golden bears", "golden flashes", "yellow jackets",
	"mean green", "horned frogs", "scarlet knights", "ragin cajuns",
	"nittany lions", "green wave", "sun devils", "purple aces",
	"black knights", "black bears", "red wolves", "great danes",

	// single-word
	"jayhawks", "wildcats", "spartans", "tigers", "bulldogs", "wolverines",
	"buckeyes", "hoosiers", "boilermakers", "badgers", "hawkeyes",
	"cyclones", "sooners", "cowboys", "longhorns", "aggies", "razorbacks",
	"rebels", "volunteers", "gators", "seminoles", "hurricanes",
	"cavaliers", "hokies", "terrapins", "orangemen", "panthers",
	"mountaineers", "bearcats", "musketeers", "billikens", "gaels",
	"huskies", "cougars", "utes", "buffaloes", "bears", "trojans",
	"bruins", "ducks", "beavers", "eagles", "friars", "hoyas", "wolfpack",
	"colonels", "flames", "owls", "rams", "broncos", "lobos", "aztecs",
	"rockets", "chippewas", "hilltoppers", "blazers", "commodores",
	"gamecocks", "pirates", "peacocks", "retrievers", "catamounts",
	"minutemen", "bonnies", "explorers", "dukes", "spiders", "monarchs",
	"seahawks", "salukis", "sycamores", "redbirds", "braves",
	"leathernecks", "mastodons", "jaguars", "dolphins", "ospreys",
	"hatters", "knights", "bulls", "lions", "crusaders", "greyhounds",
	"terriers", "phoenix", "racers", "governors", "islanders", "anteaters",
	"gauchos", "tritons", "matadors", "toreros", "waves", "pilots",
	"vikings", "norse", "penguins", "zips", "flyers", "raiders",
	"highlanders", "lancers", "titans", "49ers", "paladins", "keydets",
	"midshipmen", "falcons", "bobcats", "thundering herd", "herd",
	"mocs", "jaspers", "stags", "bison", "bisons", "hornets", "senators",
	"skyhawks", "redhawks", "roadrunners", "vaqueros", "lumberjacks",
	"antelopes", "grizzlies", "bengals", "vandals", "broncs", "pioneers",
	"mavericks", "kangaroos", "privateers", "cardinals", "cardinal",
}

func init() {
	sort.Slice(mascotSuffixes, func(i, j int) bool {
		return len(mascotSuffixes[i]) > len(mascotSuffixes[j])
	})
}
