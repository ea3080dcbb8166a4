package models

import (
	"gorm.io/gorm"
	"time"
)

const (
	WagerStatusOpen      = "open"
	WagerStatusSettled   = "settled"
	WagerStatusCancelled = "cancelled"
)

type Wager struct {
	gorm.Model
	ID               uint `gorm:"primaryKey"`
	GuildID          string
	ChannelID        string
	Participant1ID   string
	Participant1Name string
	Participant2ID   string
	Participant2Name string
	Amount           string
	Description      string
	Status           string `gorm:"default:'open'"`
	WinnerID         string
	ResolvedAt       *time.Time
	CreatedBy        string
}

// IsParticipant reports whether userID is one of the two sides of the wager.
func (w *Wager) IsParticipant(userID string) bool {
	return w.Participant1ID == userID || w.Participant2ID == userID
}

// OpponentOf returns the other participant's ID, or "" if userID is not in the wager.
func (w *Wager) OpponentOf(userID string) string {
	switch userID {
	case w.Participant1ID:
		return w.Participant2ID
	case w.Participant2ID:
		return w.Participant1ID
	}
	return ""
}

// LoserID returns the participant that did not win. Only meaningful once settled.
func (w *Wager) LoserID() string {
	return w.OpponentOf(w.WinnerID)
}
