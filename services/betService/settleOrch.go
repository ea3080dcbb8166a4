package betService

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models"
	"betTrackerBot/services/common"
)

// SettleIfOpen flips a wager to settled in a single conditional update, so
// two concurrent settle attempts produce exactly one success. Returns false
// when the wager was not open (or does not exist).
func SettleIfOpen(db *gorm.DB, wagerID uint, winnerID string) (bool, error) {
	now := time.Now()
	result := db.Model(&models.Wager{}).
		Where("id = ? AND status = ?", wagerID, models.WagerStatusOpen).
		Updates(map[string]interface{}{
			"status":      models.WagerStatusSettled,
			"winner_id":   winnerID,
			"resolved_at": &now,
		})
	return result.RowsAffected > 0, result.Error
}

// CancelIfOpen voids a wager with the same settle-if-open guarantee.
func CancelIfOpen(db *gorm.DB, wagerID uint) (bool, error) {
	now := time.Now()
	result := db.Model(&models.Wager{}).
		Where("id = ? AND status = ?", wagerID, models.WagerStatusOpen).
		Updates(map[string]interface{}{
			"status":      models.WagerStatusCancelled,
			"resolved_at": &now,
		})
	return result.RowsAffected > 0, result.Error
}

// HandleSettle validates a settle request and applies it. Not-found,
// already-resolved, and winner-not-a-participant are distinct replies, and
// none of them mutates state.
func HandleSettle(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, wagerID uint, winnerID string) {
	var wager models.Wager
	result := db.First(&wager, "id = ?", wagerID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Bet #%d not found!", wagerID))
		return
	}
	if result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}

	if wager.Status != models.WagerStatusOpen {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Bet #%d is already %s!", wager.ID, wager.Status))
		return
	}
	if !wager.IsParticipant(winnerID) {
		s.ChannelMessageSend(m.ChannelID, "Winner must be one of the people in the bet!")
		return
	}

	settled, err := SettleIfOpen(db, wagerID, winnerID)
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}
	if !settled {
		// Lost the race to another settle attempt.
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Bet #%d is already resolved!", wagerID))
		return
	}

	loserID := wager.OpponentOf(winnerID)
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Bet #%d settled! <@%s> wins %s from <@%s>!",
		wager.ID, winnerID, wager.Amount, loserID))
}

// HandleCancel voids an open wager.
func HandleCancel(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, wagerID uint) {
	cancelled, err := CancelIfOpen(db, wagerID)
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}
	if !cancelled {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Couldn't cancel bet #%d (not found or already resolved)", wagerID))
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Bet #%d cancelled!", wagerID))
}
