package parseService

import (
	"regexp"
	"strconv"
)

// Settle requests come in many shapes; each pattern records whether the wager
// ID or the winner mention is captured first.
type settlePattern struct {
	re      *regexp.Regexp
	idFirst bool
}

var settlePatterns = []settlePattern{
	{regexp.MustCompile(`(?i)settle\s+(\d+)\s+(?:winner\s+)?<@!?(\w+)>`), true},  // settle 1 winner @person
	{regexp.MustCompile(`(?i)settle\s+(\d+)\s+<@!?(\w+)>`), true},                // settle 1 @person
	{regexp.MustCompile(`(?i)(\d+)\s+(?:winner|won|goes to)\s+<@!?(\w+)>`), true},
	{regexp.MustCompile(`(?i)<@!?(\w+)>\s+(?:won|wins)\s+(?:bet\s+)?(\d+)`), false},
	{regexp.MustCompile(`(?i)(?:close|resolve|end)\s+(\d+)\s+<@!?(\w+)>`), true},
	{regexp.MustCompile(`(?i)(\d+)\s+<@!?(\w+)>\s+(?:won|wins)`), true},
	{regexp.MustCompile(`(?i)(\d+)\s+to\s+<@!?(\w+)>`), true},
}

// ParseSettleCommand extracts a wager ID and winner from a settle request.
// ok is false when the text does not look like one.
func ParseSettleCommand(text string) (wagerID uint, winnerID string, ok bool) {
	for _, p := range settlePatterns {
		g := p.re.FindStringSubmatch(text)
		if g == nil {
			continue
		}
		idGroup, winnerGroup := g[1], g[2]
		if !p.idFirst {
			idGroup, winnerGroup = g[2], g[1]
		}
		id, err := strconv.ParseUint(idGroup, 10, 32)
		if err != nil {
			continue
		}
		return uint(id), winnerGroup, true
	}
	return 0, "", false
}

var cancelRE = regexp.MustCompile(`(?i)^cancel\s+(\d+)`)

// ParseCancelCommand extracts the wager ID from a cancel request.
func ParseCancelCommand(text string) (wagerID uint, ok bool) {
	g := cancelRE.FindStringSubmatch(text)
	if g == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(g[1], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
