package parlayService

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models"
	"betTrackerBot/services/common"
	"betTrackerBot/services/parseService"
)

var (
	ErrNoLegs   = errors.New("parlay has no usable legs")
	ErrNotOwner = errors.New("parlay belongs to someone else")
)

// CreateParlay persists a parlay from parsed legs. The combined multiplier is
// the product of leg odds, recomputed here from the legs themselves; an empty
// leg list is rejected rather than creating a degenerate record.
func CreateParlay(db *gorm.DB, m *discordgo.MessageCreate, userName, stake string, legs []parseService.Leg, source string) (*models.Parlay, error) {
	if len(legs) == 0 {
		return nil, ErrNoLegs
	}

	totalOdds := parseService.TotalOdds(legs)

	parlay := models.Parlay{
		UserID:    m.Author.ID,
		UserName:  userName,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Stake:     stake,
		TotalOdds: totalOdds,
		Status:    models.ParlayStatusOpen,
		Source:    source,
	}

	if stake != "" {
		if stakeValue := ledgerAmount(stake); stakeValue > 0 {
			parlay.PotentialPayout = fmt.Sprintf("$%.2f", stakeValue*totalOdds)
		}
	}

	for i, leg := range legs {
		parlay.Legs = append(parlay.Legs, models.ParlayLeg{
			Position: i + 1,
			Pick:     leg.Pick,
			Odds:     leg.Odds,
		})
	}

	if result := db.Create(&parlay); result.Error != nil {
		return nil, result.Error
	}
	return &parlay, nil
}

func ledgerAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(raw, "$", ""), ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatParlay renders a parlay with its legs and payout.
func FormatParlay(parlay *models.Parlay) string {
	lines := []string{fmt.Sprintf("**Parlay #%d** - %s", parlay.ID, parlay.UserName)}

	if parlay.Stake != "" && parlay.PotentialPayout != "" {
		lines = append(lines, fmt.Sprintf("Stake: %s → Potential: %s", parlay.Stake, parlay.PotentialPayout))
	}

	lines = append(lines, fmt.Sprintf("Legs (%d):", len(parlay.Legs)))
	for _, leg := range parlay.Legs {
		oddsNote := ""
		if leg.Odds != 1.0 {
			oddsNote = fmt.Sprintf(" (%s)", common.FormatOdds(leg.Odds))
		}
		lines = append(lines, fmt.Sprintf("  %d. %s%s", leg.Position, leg.Pick, oddsNote))
	}

	switch parlay.Status {
	case models.ParlayStatusWon:
		lines = append(lines, "\n**WON!**")
	case models.ParlayStatusLost:
		lines = append(lines, "\n**LOST**")
	case models.ParlayStatusPushed:
		lines = append(lines, "\n**PUSHED**")
	}

	return strings.Join(lines, "\n")
}

// HandleNewParlay parses leg text and registers the parlay. An optional
// leading $stake is peeled off the text first.
func HandleNewParlay(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, text string) {
	stake, legsText := splitStake(text)

	legs := parseService.ParseParlayText(legsText)
	if len(legs) == 0 {
		s.ChannelMessageSend(m.ChannelID,
			"Just send your picks!\nExamples:\n`parlay Lakers ML, Chiefs -3, Over 220`\nor one pick per line.")
		return
	}

	userName := common.GetUsernameFromUser(m.Author)
	parlay, err := CreateParlay(db, m, userName, stake, legs, "manual")
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("✅ Parlay #%d registered!\n\n%s", parlay.ID, FormatParlay(parlay)))
}

// splitStake peels a leading dollar stake ("$20") off the parlay text.
func splitStake(text string) (stake, rest string) {
	fields := strings.Fields(text)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "$") && ledgerAmount(fields[0]) > 0 {
		return fields[0], strings.TrimSpace(strings.TrimPrefix(text, fields[0]))
	}
	return "", text
}

// ShowMyParlays lists the sender's open parlays.
func ShowMyParlays(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	var parlays []models.Parlay
	result := db.Preload("Legs", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("user_id = ? AND status = ?", m.Author.ID, models.ParlayStatusOpen).
		Order("created_at desc").Find(&parlays)
	if result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}
	if len(parlays) == 0 {
		s.ChannelMessageSend(m.ChannelID, "You have no open parlays! Start one with `parlay <picks>`")
		return
	}

	lines := []string{"**Your Open Parlays:**\n"}
	for i := range parlays {
		lines = append(lines, FormatParlay(&parlays[i]), "")
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

// HandleParlayResult marks a parlay won, lost, or pushed. Only the owner may
// resolve their parlay.
func HandleParlayResult(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, parlayID uint, status string) {
	var parlay models.Parlay
	result := db.Preload("Legs").First(&parlay, "id = ?", parlayID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Parlay #%d not found!", parlayID))
		return
	}
	if result.Error != nil {
		common.SendError(s, m.ChannelID, m.GuildID, result.Error, db)
		return
	}

	if parlay.UserID != m.Author.ID {
		s.ChannelMessageSend(m.ChannelID, "You can only update your own parlays!")
		return
	}
	if parlay.Status != models.ParlayStatusOpen {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Parlay #%d is already %s!", parlay.ID, parlay.Status))
		return
	}

	resultText := ""
	if status == models.ParlayStatusWon {
		resultText = parlay.PotentialPayout
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"result":      resultText,
		"resolved_at": &now,
	}
	if err := db.Model(&parlay).Updates(updates).Error; err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}

	switch status {
	case models.ParlayStatusWon:
		reply := fmt.Sprintf("Parlay #%d marked as WON!", parlay.ID)
		if resultText != "" {
			reply = fmt.Sprintf("%s You won %s!", reply, resultText)
		}
		s.ChannelMessageSend(m.ChannelID, reply)
	case models.ParlayStatusLost:
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Parlay #%d marked as lost. Better luck next time!", parlay.ID))
	default:
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Parlay #%d marked as %s.", parlay.ID, status))
	}
}

// DeleteParlay removes a parlay after checking it belongs to userID. A
// missing parlay surfaces as gorm.ErrRecordNotFound, someone else's as
// ErrNotOwner.
func DeleteParlay(db *gorm.DB, parlayID uint, userID string) error {
	var parlay models.Parlay
	if result := db.First(&parlay, "id = ?", parlayID); result.Error != nil {
		return result.Error
	}
	if parlay.UserID != userID {
		return ErrNotOwner
	}
	return db.Delete(&parlay).Error
}

// HandleParlayDelete removes the sender's own parlay.
func HandleParlayDelete(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, parlayID uint) {
	err := DeleteParlay(db, parlayID, m.Author.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Parlay #%d not found!", parlayID))
	case errors.Is(err, ErrNotOwner):
		s.ChannelMessageSend(m.ChannelID, "You can only delete your own parlays!")
	case err != nil:
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
	default:
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Parlay #%d deleted.", parlayID))
	}
}

// RecordSlipParlay builds a parlay from OCR slip lines handed over by the
// image collaborator. Unreadable slips are reported, not fatal.
func RecordSlipParlay(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB, ocrLines []string) {
	legs := parseService.ParseBettingSlip(ocrLines)
	if len(legs) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Couldn't read any picks from that slip. You can enter them manually with `parlay <picks>`.")
		return
	}

	userName := common.GetUsernameFromUser(m.Author)
	parlay, err := CreateParlay(db, m, userName, "", legs, "ocr")
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}

	s.ChannelMessageSend(m.ChannelID,
		fmt.Sprintf("✅ Parlay #%d registered from your slip!\n\n%s", parlay.ID, FormatParlay(parlay)))
}
