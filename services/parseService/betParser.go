package parseService

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// WagerDraft is the structured result of reading a free-form bet message.
// Amount always carries its "$" prefix.
type WagerDraft struct {
	Participant1ID string
	Participant2ID string
	Amount         string
	Description    string
}

// A betRule is one phrasing the parser understands. Rules are tried in
// declared order and the first match wins, so the more explicit phrasings
// above always out-rank the looser ones below.
type betRule struct {
	name  string
	re    *regexp.Regexp
	build func(groups []string, senderID string) *WagerDraft
}

var betRules = []betRule{
	{
		// @a vs @b $50 description
		name: "versus",
		re:   regexp.MustCompile(`(?i)<@!?(\w+)>\s+(?:vs\.?|versus)\s+<@!?(\w+)>\s+\$?(\d+(?:\.\d{2})?)\s+(.+)`),
		build: func(g []string, _ string) *WagerDraft {
			return &WagerDraft{g[1], g[2], "$" + g[3], strings.TrimSpace(g[4])}
		},
	},
	{
		// @a owes @b $20 [for description]
		name: "owes",
		re:   regexp.MustCompile(`(?i)<@!?(\w+)>\s+owes\s+<@!?(\w+)>\s+\$?(\d+(?:\.\d{2})?)\s*(?:for\s+)?(.*)`),
		build: func(g []string, _ string) *WagerDraft {
			return &WagerDraft{g[1], g[2], "$" + g[3], descOr(g[4], "debt")}
		},
	},
	{
		// [I] bet @b 50 description; sender is the other side
		name: "bet",
		re:   regexp.MustCompile(`(?i)(?:i\s+)?bet\s+<@!?(\w+)>\s+\$?(\d+(?:\.\d{2})?)\s*(.*)`),
		build: func(g []string, senderID string) *WagerDraft {
			return &WagerDraft{senderID, g[1], "$" + g[2], descOr(g[3], "bet")}
		},
	},
	{
		// @b 50 on/that/for description
		name: "mention-amount",
		re:   regexp.MustCompile(`(?i)<@!?(\w+)>\s+\$?(\d+(?:\.\d{2})?)\s+(?:on|that|for)?\s*(.*)`),
		build: func(g []string, senderID string) *WagerDraft {
			return &WagerDraft{senderID, g[1], "$" + g[2], descOr(g[3], "bet")}
		},
	},
	{
		// 50 with/against/vs @b description
		name: "amount-mention",
		re:   regexp.MustCompile(`(?i)\$?(\d+(?:\.\d{2})?)\s+(?:with|against|vs)?\s*<@!?(\w+)>\s*(.*)`),
		build: func(g []string, senderID string) *WagerDraft {
			return &WagerDraft{senderID, g[2], "$" + g[1], descOr(g[3], "bet")}
		},
	},
}

func descOr(desc, fallback string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return fallback
	}
	return desc
}

// ParseBetMessage turns a free-form message into a WagerDraft. The bot's own
// mention is stripped first, then the rule cascade runs; if no rule matches,
// a last-resort scan over mentions and numbers is tried. A nil result means
// the message could not be read as a wager and the caller should fall back
// to a generic "didn't understand" reply.
func ParseBetMessage(text, botID, senderID string) *WagerDraft {
	text = StripBotMention(text, botID)

	for _, rule := range betRules {
		if g := rule.re.FindStringSubmatch(text); g != nil {
			if draft := rule.build(g, senderID); draft != nil {
				return draft
			}
		}
	}

	return scanBetFallback(text, botID, senderID)
}

var (
	mentionRE      = regexp.MustCompile(`<@!?(\w+)>`)
	dollarAmountRE = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
	bareAmountRE   = regexp.MustCompile(`(?:^|[\s,])(\d{2,})(?:[\s,.]|$)`)
	leadingNoiseRE = regexp.MustCompile(`(?i)^(bet|i bet|on|that|for)\s*`)
)

type amountToken struct {
	raw    string
	value  float64
	dollar bool
}

// scanBetFallback collects every mention and numeric token in the text and
// guesses the wager from them. Dollar-prefixed tokens outrank bare ones, and
// larger values outrank smaller within each tier, since the biggest number
// is the most likely stake.
func scanBetFallback(text, botID, senderID string) *WagerDraft {
	var mentions []string
	seen := make(map[string]bool)
	for _, g := range mentionRE.FindAllStringSubmatch(text, -1) {
		if g[1] == botID || seen[g[1]] {
			continue
		}
		seen[g[1]] = true
		mentions = append(mentions, g[1])
	}

	var amounts []amountToken
	for _, g := range dollarAmountRE.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(g[1], 64); err == nil && v >= 1 {
			amounts = append(amounts, amountToken{g[1], v, true})
		}
	}
	for _, g := range bareAmountRE.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(g[1], 64); err == nil && v >= 1 {
			amounts = append(amounts, amountToken{g[1], v, false})
		}
	}

	if len(mentions) == 0 || len(amounts) == 0 {
		return nil
	}

	sort.SliceStable(amounts, func(i, j int) bool {
		if amounts[i].dollar != amounts[j].dollar {
			return amounts[i].dollar
		}
		return amounts[i].value > amounts[j].value
	})
	amount := amounts[0].raw

	desc := text
	for _, m := range mentions {
		desc = strings.ReplaceAll(desc, "<@!"+m+">", "")
		desc = strings.ReplaceAll(desc, "<@"+m+">", "")
	}
	desc = removeFirstAmount(desc, amount)
	desc = CollapseWhitespace(desc)
	desc = strings.TrimSpace(leadingNoiseRE.ReplaceAllString(desc, ""))

	draft := &WagerDraft{Amount: "$" + amount, Description: descOr(desc, "bet")}
	if len(mentions) >= 2 {
		draft.Participant1ID = mentions[0]
		draft.Participant2ID = mentions[1]
	} else {
		draft.Participant1ID = senderID
		draft.Participant2ID = mentions[0]
	}
	return draft
}

// removeFirstAmount drops the first occurrence of the chosen amount from the
// text, preferring the "$"-prefixed form so a bare copy of the same number in
// the description survives.
func removeFirstAmount(text, amount string) string {
	if idx := strings.Index(text, "$"+amount); idx >= 0 {
		return text[:idx] + text[idx+len(amount)+1:]
	}
	if idx := strings.Index(text, amount); idx >= 0 {
		return text[:idx] + text[idx+len(amount):]
	}
	return text
}
