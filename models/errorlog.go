package models

import (
	"gorm.io/gorm"
)

// ErrorLog records a runtime failure so a misbehaving command can be traced
// back to the guild and channel it came from.
type ErrorLog struct {
	gorm.Model
	ID        uint   `gorm:"primaryKey"`
	GuildID   string `gorm:"size:64"`
	ChannelID string `gorm:"size:64"`
	Message   string
}
