package parseService

import (
	"regexp"
	"strings"
)

// Known team names for slip recognition. Partial matches are fine; OCR output
// is too messy for anything stricter.
var knownTeams = []string{
	// NBA
	"lakers", "celtics", "warriors", "bulls", "heat", "nets", "knicks", "sixers",
	"bucks", "suns", "mavericks", "mavs", "clippers", "nuggets", "grizzlies",
	"cavaliers", "cavs", "thunder", "pelicans", "timberwolves", "wolves", "kings",
	"hawks", "hornets", "magic", "pacers", "pistons", "raptors", "wizards",
	"spurs", "jazz", "trail blazers", "blazers", "rockets",
	// NFL
	"chiefs", "eagles", "cowboys", "bills", "ravens", "49ers", "niners", "dolphins",
	"lions", "packers", "bengals", "chargers", "seahawks", "steelers", "rams",
	"vikings", "jaguars", "jags", "texans", "colts", "broncos", "raiders", "saints",
	"patriots", "pats", "bears", "falcons", "cardinals", "giants", "jets", "titans",
	"panthers", "browns", "commanders", "buccaneers", "bucs",
	// MLB
	"yankees", "dodgers", "braves", "astros", "mets", "phillies", "padres",
	"mariners", "blue jays", "orioles", "rays", "twins", "guardians", "rangers",
	"red sox", "white sox", "cubs", "brewers", "diamondbacks", "dbacks",
	"reds", "pirates", "royals", "tigers", "athletics", "angels", "rockies",
	"marlins", "nationals",
	// NHL
	"bruins", "avalanche", "oilers", "hurricanes", "devils",
	"maple leafs", "leafs", "lightning", "stars", "wild", "golden knights",
	"knights", "flames", "kraken", "penguins", "pens", "capitals", "caps", "canucks",
	"islanders", "isles", "blackhawks", "blues", "senators", "sens",
	"sabres", "red wings", "wings", "ducks", "coyotes", "predators", "preds", "sharks",
	// Soccer
	"arsenal", "chelsea", "liverpool", "man city", "manchester city", "man united",
	"manchester united", "tottenham", "barcelona", "real madrid", "bayern",
	"psg", "juventus", "inter", "milan", "dortmund", "ajax", "benfica", "porto",
}

var (
	slipBetRE = regexp.MustCompile(
		`(?i)([A-Za-z][A-Za-z\s.']+?)\s*([+-]?\d+\.?\d*|ML|moneyline|over|under|o\d+\.?\d*|u\d+\.?\d*)\s*([+-]\d{2,3})?`)
	slipTotalRE = regexp.MustCompile(`(?i)(over|under|o|u)\s*(\d+\.?\d*)\s*([+-]\d{2,3})?`)
)

// ParseBettingSlip extracts parlay legs from OCR-derived text lines. It keys
// on known team names plus a spread/moneyline token, falling back to bare
// over/under totals, and skips duplicate picks. Lines it cannot read are
// ignored rather than failing the whole slip.
func ParseBettingSlip(ocrLines []string) []Leg {
	var legs []Leg

	for _, line := range ocrLines {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}

		if g := slipBetRE.FindStringSubmatch(line); g != nil {
			potentialTeam := strings.ToLower(strings.TrimSpace(g[1]))
			lineInfo := strings.TrimSpace(g[2])

			if matchesKnownTeam(potentialTeam) {
				pick := titleWords(potentialTeam) + " " + lineInfo
				odds := 1.0
				if g[3] != "" {
					odds = ParseOdds(g[3])
				}
				if !containsPick(legs, potentialTeam) {
					legs = append(legs, Leg{Pick: pick, Odds: odds})
				}
				continue
			}
		}

		if g := slipTotalRE.FindStringSubmatch(line); g != nil {
			ouType := strings.ToUpper(g[1])
			switch ouType {
			case "O", "OVER":
				ouType = "Over"
			case "U", "UNDER":
				ouType = "Under"
			}
			pick := ouType + " " + g[2]
			odds := 1.0
			if g[3] != "" {
				odds = ParseOdds(g[3])
			}
			if !containsPick(legs, pick) {
				legs = append(legs, Leg{Pick: pick, Odds: odds})
			}
		}
	}

	return legs
}

func matchesKnownTeam(candidate string) bool {
	for _, team := range knownTeams {
		if strings.Contains(candidate, team) || strings.Contains(team, candidate) {
			return true
		}
	}
	return false
}

func containsPick(legs []Leg, fragment string) bool {
	fragment = strings.ToLower(fragment)
	for _, leg := range legs {
		if strings.Contains(strings.ToLower(leg.Pick), fragment) {
			return true
		}
	}
	return false
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
