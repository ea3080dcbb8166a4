package common

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/models"
)

// SendError reports a failure to the channel and records it in the error log.
func SendError(s *discordgo.Session, channelID, guildID string, err error, db *gorm.DB) {
	log.Printf("Error in guild %s: %v", guildID, err)

	if channelID != "" {
		if _, sendErr := s.ChannelMessageSend(channelID, fmt.Sprintf("An error occured: %v", err)); sendErr != nil {
			log.Printf("Error sending error message: %v", sendErr)
		}
	}

	errLog := models.ErrorLog{
		GuildID:   guildID,
		ChannelID: channelID,
		Message:   fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

// GetUsernameFromUser extracts a display name from a discordgo.User object.
func GetUsernameFromUser(user *discordgo.User) string {
	if user == nil {
		return "Unknown User"
	}
	username := user.GlobalName
	if username == "" {
		username = user.Username
	}
	if username == "" {
		return "Unknown User"
	}
	return username
}

// GetUsername resolves a guild member's display name, falling back to
// "Unknown User" when the member cannot be fetched.
func GetUsername(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err != nil || member == nil {
		return "Unknown User"
	}
	return GetUsernameFromUser(member.User)
}

// FormatMoney renders a signed net amount: "+$20.00", "-$20.00", "$0.00".
func FormatMoney(amount float64) string {
	switch {
	case amount > 0:
		return fmt.Sprintf("+$%.2f", amount)
	case amount < 0:
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return "$0.00"
}

// FormatOdds renders a decimal odds multiplier for display.
func FormatOdds(odds float64) string {
	return fmt.Sprintf("%.2f", odds)
}

func ESPNWrapper(requestUrl string) (*http.Response, error) {
	client := &http.Client{}
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, requestUrl)
	}
	return resp, nil
}
