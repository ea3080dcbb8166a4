package parseService

import (
	"regexp"
	"strings"
)

// Leg is one pick inside a parlay. Odds of 1.0 means no odds were given.
type Leg struct {
	Pick string
	Odds float64
}

var (
	ordinalPrefixRE = regexp.MustCompile(`^\d+[.)]\s*`)
	bulletPrefixRE  = regexp.MustCompile(`^[-•*]\s*`)
	legLabelRE      = regexp.MustCompile(`(?i)^leg\s*\d*:?\s*`)
	trailingPunctRE = regexp.MustCompile(`[,;:]+$`)
)

// Trailing-anchor odds patterns, most specific first. The first one that
// matches the tail of a line wins; everything before it is the pick.
var legOddsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([+-]\d{3})\s*$`),          // +150, -110
	regexp.MustCompile(`([+-]\d+)\s*$`),            // +15, -11
	regexp.MustCompile(`@\s*([+-]?\d+\.?\d*)\s*$`), // @ 1.95
	regexp.MustCompile(`\(([+-]?\d+\.?\d*)\)\s*$`), // (1.95) or (+150)
	regexp.MustCompile(`\s(\d+\.\d{2})\s*$`),       // bare decimal: 1.95
}

var legNoiseWords = []string{"parlay", "total", "wager", "stake", "bet", "slip"}

// ParseParlayText splits a block of free text into parlay legs. Very
// forgiving: lines, commas, or semicolons separate legs, bullets and
// "Leg 1:" style labels are stripped, and noise lines are skipped.
// An empty result means no usable legs were found.
func ParseParlayText(text string) []Leg {
	var legs []Leg

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 1 {
		if strings.Contains(text, ",") {
			lines = strings.Split(text, ",")
		} else if strings.Contains(text, ";") {
			lines = strings.Split(text, ";")
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "/") || strings.HasPrefix(line, "#") {
			continue
		}

		line = ordinalPrefixRE.ReplaceAllString(line, "")
		line = bulletPrefixRE.ReplaceAllString(line, "")
		line = legLabelRE.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" || isNoiseWord(line) {
			continue
		}

		leg := Leg{Pick: line, Odds: 1.0}
		for _, pattern := range legOddsPatterns {
			if loc := pattern.FindStringSubmatchIndex(line); loc != nil {
				leg.Odds = ParseOdds(line[loc[2]:loc[3]])
				leg.Pick = strings.TrimSpace(line[:loc[0]])
				break
			}
		}

		pick := strings.TrimSpace(trailingPunctRE.ReplaceAllString(leg.Pick, ""))
		if len(pick) >= 2 {
			leg.Pick = pick
			legs = append(legs, leg)
		}
	}

	return legs
}

func isNoiseWord(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range legNoiseWords {
		if lower == word {
			return true
		}
	}
	return false
}

// TotalOdds is the parlay's combined multiplier: the product of all leg odds.
func TotalOdds(legs []Leg) float64 {
	total := 1.0
	for _, leg := range legs {
		total *= leg.Odds
	}
	return total
}
