package betService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models"
	"betTrackerBot/models/external"
	"betTrackerBot/services/common"
	"betTrackerBot/services/extService"
)

// MatchToGame returns the first completed game whose team name or
// abbreviation (longer than 2 characters) appears in the wager description.
// Deliberately weak: first match in caller order, not best match, so replies
// built on it must always offer manual settlement as the fallback.
func MatchToGame(description string, games []external.Game) *external.Game {
	desc := strings.ToLower(description)

	for i := range games {
		game := &games[i]
		if !game.Completed {
			continue
		}

		names := []string{game.HomeTeam, game.AwayTeam, game.HomeAbbrev, game.AwayAbbrev}
		for _, name := range names {
			name = strings.ToLower(name)
			if len(name) > 2 && strings.Contains(desc, name) {
				return game
			}
		}
	}

	return nil
}

// FormatGame renders a game result line.
func FormatGame(game external.Game) string {
	if game.Completed {
		return fmt.Sprintf("%s %s @ %s %s (Final) - Winner: %s",
			game.AwayTeam, game.AwayScore, game.HomeTeam, game.HomeScore, game.Winner)
	}
	return fmt.Sprintf("%s %s @ %s %s (%s)",
		game.AwayTeam, game.AwayScore, game.HomeTeam, game.HomeScore, game.Status)
}

// ShowAutoMatches fetches recent scores and suggests settlements for open
// wagers in the channel whose descriptions match a finished game.
func ShowAutoMatches(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	var wagers []models.Wager
	result := db.Where("status = ? AND channel_id = ?", models.WagerStatusOpen, m.ChannelID).Find(&wagers)
	if result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}
	if len(wagers) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No open bets to check!")
		return
	}

	games := extService.FetchAllScores()

	type suggestion struct {
		wager models.Wager
		game  *external.Game
	}
	var matches []suggestion
	for _, w := range wagers {
		if game := MatchToGame(w.Description, games); game != nil {
			matches = append(matches, suggestion{w, game})
		}
	}

	if len(matches) == 0 {
		s.ChannelMessageSend(m.ChannelID,
			"Couldn't auto-match any bets to recent games. You can settle manually with `settle <id> winner @person`")
		return
	}

	lines := []string{"**Potential bet matches found:**"}
	for _, match := range matches {
		lines = append(lines, fmt.Sprintf("\n**Bet #%d**: %s", match.wager.ID, match.wager.Description))
		lines = append(lines, fmt.Sprintf("  Matched game: %s vs %s", match.game.AwayTeam, match.game.HomeTeam))
		lines = append(lines, fmt.Sprintf("  Result: %s - %s, Winner: %s",
			match.game.AwayScore, match.game.HomeScore, match.game.Winner))
		lines = append(lines, fmt.Sprintf("  → To settle: `settle %d winner @person`", match.wager.ID))
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}
