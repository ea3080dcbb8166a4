package scheduler_jobs

import (
	"fmt"
	"log"
	"runtime/debug"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models"
	"betTrackerBot/services/betService"
	"betTrackerBot/services/extService"
)

// CheckOpenMatches scans every guild's open bets against completed games and
// posts settle suggestions to the guild's bet channel. It never settles
// anything on its own; a human still has to confirm the winner.
func CheckOpenMatches(s *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckOpenMatches", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckOpenMatches: %v", r)
		}
	}()

	var guilds []models.Guild
	result := db.Where("bet_channel_id <> ''").Find(&guilds)
	if result.Error != nil {
		return result.Error
	}
	if len(guilds) == 0 {
		return nil
	}

	games := extService.FetchAllScores()
	if len(games) == 0 {
		return nil
	}

	for _, guild := range guilds {
		var open []models.Wager
		result = db.Where("guild_id = ? AND status = ?", guild.GuildID, models.WagerStatusOpen).Find(&open)
		if result.Error != nil {
			log.Printf("CheckOpenMatches: guild %s: %v", guild.GuildID, result.Error)
			continue
		}

		var lines []string
		for _, wager := range open {
			game := betService.MatchToGame(wager.Description, games)
			if game == nil {
				continue
			}
			lines = append(lines, fmt.Sprintf("Bet #%d (%s) looks finished: %s\nSettle with `settle %d winner @person`",
				wager.ID, wager.Description, betService.FormatGame(*game), wager.ID))
		}
		if len(lines) == 0 {
			continue
		}

		message := "**Finished games with open bets:**\n" + strings.Join(lines, "\n\n")
		_, sendErr := s.ChannelMessageSend(guild.BetChannelID, message)
		if sendErr != nil {
			log.Printf("CheckOpenMatches: send to %s: %v", guild.BetChannelID, sendErr)
		}
	}

	return nil
}
