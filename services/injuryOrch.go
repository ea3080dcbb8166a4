package services

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models/external"
	"betTrackerBot/services/extService"
)

// Keep the reply well under Discord's message limit.
const maxInjuryMessage = 1900

// ShowInjuries replies with the NBA injury report grouped by status.
func ShowInjuries(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	injuries, err := extService.FetchInjuries()
	if err != nil || len(injuries) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Couldn't fetch the injury report right now.")
		return
	}

	out, doubtful, questionable := groupInjuries(injuries)

	lines := []string{"**NBA Injury Report**"}
	lines = appendInjuryGroup(lines, "OUT", out, 15)
	lines = appendInjuryGroup(lines, "DOUBTFUL", doubtful, 10)
	lines = appendInjuryGroup(lines, "QUESTIONABLE/DTD", questionable, 15)

	message := strings.Join(lines, "\n")
	if len(message) > maxInjuryMessage {
		message = message[:maxInjuryMessage] + "\n..."
	}
	s.ChannelMessageSend(m.ChannelID, message)
}

// groupInjuries buckets injury entries by report status. Day-to-day counts
// as questionable; anything else is dropped.
func groupInjuries(injuries []external.Injury) (out, doubtful, questionable []external.Injury) {
	for _, injury := range injuries {
		status := strings.ToLower(injury.Status)
		switch {
		case strings.Contains(status, "out"):
			out = append(out, injury)
		case strings.Contains(status, "doubtful"):
			doubtful = append(doubtful, injury)
		case strings.Contains(status, "questionable"), strings.Contains(status, "day-to-day"):
			questionable = append(questionable, injury)
		}
	}
	return out, doubtful, questionable
}

func appendInjuryGroup(lines []string, label string, injuries []external.Injury, limit int) []string {
	if len(injuries) == 0 {
		return lines
	}
	if len(injuries) > limit {
		injuries = injuries[:limit]
	}
	lines = append(lines, fmt.Sprintf("\n**%s:**", label))
	for _, injury := range injuries {
		lines = append(lines, fmt.Sprintf("• %s (%s) - %s", injury.Player, injury.Team, injury.Injury))
	}
	return lines
}
