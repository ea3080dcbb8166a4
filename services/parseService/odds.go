package parseService

import (
	"math"
	"strconv"
	"strings"
)

// ParseOdds converts American (+150, -110) or decimal (1.91) odds notation to
// a decimal payout multiplier. Odds parsing is advisory: anything unreadable
// comes back as the neutral 1.0 rather than an error.
func ParseOdds(raw string) float64 {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, ".") && !strings.HasPrefix(raw, "+") && !strings.HasPrefix(raw, "-") {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}

	n, err := strconv.Atoi(strings.TrimPrefix(raw, "+"))
	if err != nil || n == 0 {
		return 1.0
	}
	if n > 0 {
		// +150 means $100 risked returns $150 profit
		return 1 + float64(n)/100
	}
	// -150 means $150 risked returns $100 profit
	return 1 + 100/math.Abs(float64(n))
}
