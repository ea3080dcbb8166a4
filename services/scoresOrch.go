package services

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models/external"
	"betTrackerBot/services/betService"
	"betTrackerBot/services/extService"
)

// ShowScores replies with recent scores for one sport.
func ShowScores(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, sport string) {
	if sport == "" {
		sport = "nba"
	}
	sport = strings.ToLower(sport)

	if _, ok := extService.ScoreboardURLs[sport]; !ok {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Unknown sport '%s'. Try: nba, nfl, soccer, epl", sport))
		return
	}

	games, err := extService.FetchScores(sport)
	if err != nil || len(games) == 0 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Couldn't fetch %s scores right now.", strings.ToUpper(sport)))
		return
	}
	if len(games) > 10 {
		games = games[:10]
	}

	lines := []string{fmt.Sprintf("**%s Scores:**", strings.ToUpper(sport))}
	for _, game := range games {
		lines = append(lines, betService.FormatGame(game))
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

// ShowLines replies with betting lines for a sport, or searches team names
// across the major sports when the query is not a sport key.
func ShowLines(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		query = "nba"
	}

	if _, ok := extService.LineSports[query]; ok {
		lines, err := extService.FetchLines(query)
		if err != nil || len(lines) == 0 {
			s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No games/odds found for %s", strings.ToUpper(query)))
			return
		}

		reply := []string{fmt.Sprintf("**%s Lines:**\n", strings.ToUpper(query))}
		for _, line := range lines {
			reply = append(reply, formatLine(line), "")
		}
		s.ChannelMessageSend(m.ChannelID, strings.Join(reply, "\n"))
		return
	}

	// Not a sport key, search team names instead.
	var matching []external.GameLine
	for _, sport := range []string{"nba", "nfl", "mlb", "nhl"} {
		lines, err := extService.FetchLines(sport)
		if err != nil {
			continue
		}
		for _, line := range lines {
			if strings.Contains(strings.ToLower(line.HomeTeam), query) ||
				strings.Contains(strings.ToLower(line.AwayTeam), query) {
				matching = append(matching, line)
			}
		}
	}

	if len(matching) == 0 {
		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("No games found for '%s'. Try a team name or sport (nba, nfl, mlb, nhl)", query))
		return
	}

	reply := []string{fmt.Sprintf("**Lines for '%s':**\n", query)}
	for _, line := range matching {
		reply = append(reply, fmt.Sprintf("_%s:_", strings.ToUpper(line.Sport)), formatLine(line), "")
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(reply, "\n"))
}

func formatLine(line external.GameLine) string {
	lines := []string{fmt.Sprintf("**%s @ %s**", line.AwayTeam, line.HomeTeam)}
	lines = append(lines, fmt.Sprintf("  %s", line.Status))

	if line.Score != "" {
		lines = append(lines, fmt.Sprintf("  Score: %s", line.Score))
	}
	if line.Spread != "" {
		lines = append(lines, fmt.Sprintf("  Spread: %s", line.Spread))
	}
	if line.OverUnder != 0 {
		lines = append(lines, fmt.Sprintf("  O/U: %g", line.OverUnder))
	}
	if line.Details != "" {
		lines = append(lines, fmt.Sprintf("  %s", line.Details))
	}

	return strings.Join(lines, "\n")
}
