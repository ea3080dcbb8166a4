package betService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models"
	"betTrackerBot/services/common"
	"betTrackerBot/services/parseService"
)

// RecordWager persists a parsed wager draft and announces it.
func RecordWager(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, draft *parseService.WagerDraft) {
	wager := models.Wager{
		GuildID:          m.GuildID,
		ChannelID:        m.ChannelID,
		Participant1ID:   draft.Participant1ID,
		Participant1Name: common.GetUsername(s, m.GuildID, draft.Participant1ID),
		Participant2ID:   draft.Participant2ID,
		Participant2Name: common.GetUsername(s, m.GuildID, draft.Participant2ID),
		Amount:           draft.Amount,
		Description:      draft.Description,
		Status:           models.WagerStatusOpen,
		CreatedBy:        m.Author.ID,
	}

	if result := db.Create(&wager); result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}

	reply := fmt.Sprintf("Bet #%d recorded! <@%s> vs <@%s> for %s: %s",
		wager.ID, wager.Participant1ID, wager.Participant2ID, wager.Amount, wager.Description)
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		common.SendError(s, "", m.GuildID, err, db)
	}
}

// FormatWager renders one wager for a listing. quiet avoids @mentions so a
// listing does not ping everyone in it.
func FormatWager(w models.Wager, quiet bool) string {
	if quiet {
		return fmt.Sprintf("**#%d** - %s vs %s for %s: %s",
			w.ID, w.Participant1Name, w.Participant2Name, w.Amount, w.Description)
	}
	return fmt.Sprintf("**#%d** - <@%s> vs <@%s> for %s: %s",
		w.ID, w.Participant1ID, w.Participant2ID, w.Amount, w.Description)
}

// ShowOpenWagers lists open wagers, either for the current channel or the
// whole guild.
func ShowOpenWagers(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, allChannels bool) {
	query := db.Where("status = ? AND guild_id = ?", models.WagerStatusOpen, m.GuildID)
	header := "**All Open Bets:**"
	empty := "No open bets anywhere!"
	if !allChannels {
		query = query.Where("channel_id = ?", m.ChannelID)
		header = "**Open Bets in this channel:**"
		empty = "No open bets in this channel!"
	}

	var wagers []models.Wager
	if result := query.Order("created_at desc").Find(&wagers); result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}
	if len(wagers) == 0 {
		s.ChannelMessageSend(m.ChannelID, empty)
		return
	}

	lines := []string{header}
	for _, w := range wagers {
		lines = append(lines, FormatWager(w, true))
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

// ShowResolvedWagers lists recently settled or cancelled wagers in the channel.
func ShowResolvedWagers(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	var wagers []models.Wager
	result := db.Where("status != ? AND channel_id = ?", models.WagerStatusOpen, m.ChannelID).
		Order("resolved_at desc").Limit(10).Find(&wagers)
	if result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}
	if len(wagers) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No bet history in this channel!")
		return
	}

	lines := []string{"**Recent Bet History:**"}
	for _, w := range wagers {
		status := w.Status
		if status == models.WagerStatusSettled {
			status = fmt.Sprintf("won by <@%s>", w.WinnerID)
		}
		lines = append(lines, fmt.Sprintf("#%d - %s vs %s for %s: %s [%s]",
			w.ID, w.Participant1Name, w.Participant2Name, w.Amount, w.Description, status))
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

// ShowMyWagers lists the sender's open wagers across the guild.
func ShowMyWagers(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	var wagers []models.Wager
	result := db.Where("status = ? AND guild_id = ? AND (participant1_id = ? OR participant2_id = ?)",
		models.WagerStatusOpen, m.GuildID, m.Author.ID, m.Author.ID).
		Order("created_at desc").Find(&wagers)
	if result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}
	if len(wagers) == 0 {
		s.ChannelMessageSend(m.ChannelID, "You have no open bets!")
		return
	}

	lines := []string{"**Your Open Bets:**"}
	for _, w := range wagers {
		lines = append(lines, FormatWager(w, true))
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

// ShowMyHistory lists the sender's recent settled wagers with a W/L tally.
func ShowMyHistory(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	var wagers []models.Wager
	result := db.Where("status = ? AND (participant1_id = ? OR participant2_id = ?)",
		models.WagerStatusSettled, m.Author.ID, m.Author.ID).
		Order("resolved_at desc").Limit(15).Find(&wagers)
	if result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}
	if len(wagers) == 0 {
		s.ChannelMessageSend(m.ChannelID, "You have no bet history yet!")
		return
	}

	lines := []string{"**Your Bet History:**"}
	wins, losses := 0, 0
	for _, w := range wagers {
		outcome := "LOST"
		if w.WinnerID == m.Author.ID {
			outcome = "WON"
			wins++
		} else {
			losses++
		}

		opponentName := w.Participant1Name
		if w.Participant1ID == m.Author.ID {
			opponentName = w.Participant2Name
		}
		lines = append(lines, fmt.Sprintf("• %s %s vs %s: %s", outcome, w.Amount, opponentName, w.Description))
	}
	lines = append(lines, fmt.Sprintf("\n**Record: %dW - %dL**", wins, losses))
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}
