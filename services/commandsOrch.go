package services

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models"
	"betTrackerBot/services/betService"
	"betTrackerBot/services/common"
	"betTrackerBot/services/extService"
	"betTrackerBot/services/parlayService"
	"betTrackerBot/services/parseService"
	"betTrackerBot/services/propsService"
)

const commandsText = `**Commands:**
• ` + "`list`" + ` - Open bets in this channel
• ` + "`all`" + ` - All open bets
• ` + "`mybets`" + ` - Your open bets
• ` + "`history`" + ` - Recently settled bets
• ` + "`myhistory`" + ` - Your bet history
• ` + "`balance`" + ` - Your balance & debts
• ` + "`balances`" + ` - Leaderboard
• ` + "`shame`" + ` - Wall of shame (worst records)
• ` + "`scores nba/nfl/soccer`" + ` - Sports scores
• ` + "`lines nba/nfl/mlb`" + ` - Betting odds/spreads
• ` + "`settle <id> @winner`" + ` - Settle a bet
• ` + "`cancel <id>`" + ` - Cancel a bet
• ` + "`parlay <picks>`" + ` - Track a parlay
• ` + "`help`" + ` - Full help`

const helpText = `**Bet Tracker Bot Help**

**Log a bet:**
` + "`@betbot @alice vs @bob $50 on the game`" + `
` + "`@betbot I bet @bob 50 Lakers win`" + `

**Commands:**
- ` + "`list`" + ` - Show open bets in this channel
- ` + "`all`" + ` - Show all open bets
- ` + "`history`" + ` - Show recently settled bets
- ` + "`settle <id> winner @person`" + ` - Settle a bet
- ` + "`cancel <id>`" + ` - Cancel a bet
- ` + "`scores <nba|nfl|soccer|epl>`" + ` - Show recent scores
- ` + "`check`" + ` - Auto-match bets to game results
- ` + "`lines <sport>`" + ` - Betting lines (nba/nfl/mlb/nhl/soccer)
- ` + "`injuries`" + ` - NBA injury report
- ` + "`balance`" + ` - Check your balance
- ` + "`balances`" + ` - Show everyone's balances
- ` + "`parlay [$stake] <picks>`" + ` - Track a parlay
- ` + "`parlays`" + ` - Your open parlays
- ` + "`parlay won|lost <id>`" + ` - Resolve a parlay
- ` + "`parlay delete <id>`" + ` - Delete your parlay
- ` + "`slip <ocr text>`" + ` - Track a parlay from slip text
- ` + "`props`" + ` - Projections & prop edges
- ` + "`myhistory`" + ` - Show your bet history`

var (
	scoresCmdRE       = regexp.MustCompile(`(?i)^scores?\b\s*(\w+)?`)
	linesCmdRE        = regexp.MustCompile(`(?i)^(?:lines?|odds|spreads?|betting)\b\s*(.*)`)
	parlayResultCmdRE = regexp.MustCompile(`(?i)^parlay[\s_](won|lost|push|pushed)\s+(\d+)`)
	parlayDeleteCmdRE = regexp.MustCompile(`(?i)^parlay[\s_]delete\s+(\d+)`)
	parlayCmdRE       = regexp.MustCompile(`(?i)^parlay\b\s*`)
	slipCmdRE         = regexp.MustCompile(`(?i)^slip\b\s*`)
	projectionsCmdRE  = regexp.MustCompile(`(?i)^(?:projections|darko)\b\s*`)
)

// HandleMention is the single entry point for a message that mentions the
// bot: keyword commands first, then the settle/cancel grammars, and finally
// the free-form bet parser. Anything unreadable gets the generic fallback
// reply rather than an error.
func HandleMention(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, projections *propsService.ProjectionStore, botID string) {
	text := parseService.StripBotMention(m.Content, botID)
	clean := strings.ToLower(text)

	switch clean {
	case "commands", "command", "cmds", "cmd":
		s.ChannelMessageSend(m.ChannelID, commandsText)
		return
	case "help":
		s.ChannelMessageSend(m.ChannelID, helpText)
		return
	case "list", "bets", "open", "openbets", "open bets":
		betService.ShowOpenWagers(s, m, db, false)
		return
	case "listall", "list all", "all", "all bets", "allbets":
		betService.ShowOpenWagers(s, m, db, true)
		return
	case "history", "recent", "resolved", "past", "past bets":
		betService.ShowResolvedWagers(s, m, db)
		return
	case "balance", "mybalance", "my balance":
		ShowBalance(s, m, db)
		return
	case "balances", "leaderboard", "standings", "all balances":
		ShowLeaderboard(s, m, db)
		return
	case "mybets", "my bets", "myopen", "my open":
		betService.ShowMyWagers(s, m, db)
		return
	case "myhistory", "my history":
		betService.ShowMyHistory(s, m, db)
		return
	case "shame", "wall of shame", "wallofshame", "losers", "worst":
		ShowShame(s, m, db)
		return
	case "check":
		betService.ShowAutoMatches(s, m, db)
		return
	case "injuries", "injury", "injury report":
		ShowInjuries(s, m, db)
		return
	case "parlays", "my parlays":
		parlayService.ShowMyParlays(s, m, db)
		return
	case "props", "projections":
		propsService.ShowProjections(s, m, projections, fetchPropLines(s, m, db))
		return
	}

	if g := parlayResultCmdRE.FindStringSubmatch(clean); g != nil {
		id, err := strconv.ParseUint(g[2], 10, 32)
		if err == nil {
			status := models.ParlayStatusLost
			switch g[1] {
			case "won":
				status = models.ParlayStatusWon
			case "push", "pushed":
				status = models.ParlayStatusPushed
			}
			parlayService.HandleParlayResult(s, m, db, uint(id), status)
			return
		}
	}

	if g := parlayDeleteCmdRE.FindStringSubmatch(clean); g != nil {
		id, err := strconv.ParseUint(g[1], 10, 32)
		if err == nil {
			parlayService.HandleParlayDelete(s, m, db, uint(id))
			return
		}
	}

	// Leg text keeps the original casing; only the command word is matched
	// case-insensitively.
	if loc := parlayCmdRE.FindStringIndex(text); loc != nil && loc[0] == 0 {
		parlayService.HandleNewParlay(s, m, db, text[loc[1]:])
		return
	}
	if loc := slipCmdRE.FindStringIndex(text); loc != nil && loc[0] == 0 {
		parlayService.RecordSlipParlay(s, m, db, strings.Split(text[loc[1]:], "\n"))
		return
	}
	if loc := projectionsCmdRE.FindStringIndex(text); loc != nil && loc[0] == 0 && strings.TrimSpace(text[loc[1]:]) != "" {
		propsService.HandleProjectionsUpload(s, m, projections, text[loc[1]:])
		return
	}

	if g := scoresCmdRE.FindStringSubmatch(clean); g != nil {
		ShowScores(s, m, db, g[1])
		return
	}
	if g := linesCmdRE.FindStringSubmatch(clean); g != nil {
		ShowLines(s, m, db, g[1])
		return
	}

	if wagerID, winnerID, ok := parseService.ParseSettleCommand(text); ok {
		betService.HandleSettle(s, m, db, wagerID, winnerID)
		return
	}
	if wagerID, ok := parseService.ParseCancelCommand(clean); ok {
		betService.HandleCancel(s, m, db, wagerID)
		return
	}

	if draft := parseService.ParseBetMessage(m.Content, botID, m.Author.ID); draft != nil {
		betService.RecordWager(s, m, db, draft)
		return
	}

	s.ChannelMessageSend(m.ChannelID, "I didn't understand that. Try `help` for usage info.")
}

// fetchPropLines pulls current prop lines when an Odds API key is
// configured. Props are optional: without a key (or on a failed fetch) the
// projections display falls back to raw projections.
func fetchPropLines(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) []propsService.PropLine {
	apiKey := os.Getenv("ODDS_API_KEY")
	if apiKey == "" {
		return nil
	}
	props, err := extService.FetchPlayerProps(apiKey)
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return nil
	}
	return props
}
