package models

import (
	"gorm.io/gorm"
	"time"
)

const (
	ParlayStatusOpen   = "open"
	ParlayStatusWon    = "won"
	ParlayStatusLost   = "lost"
	ParlayStatusPushed = "pushed"
)

type Parlay struct {
	gorm.Model
	ID              uint `gorm:"primaryKey"`
	UserID          string
	UserName        string
	GuildID         string
	ChannelID       string
	Stake           string
	TotalOdds       float64 // product of all leg odds
	PotentialPayout string
	Status          string `gorm:"default:'open'"`
	Result          string
	Source          string // "manual" or "ocr"
	ResolvedAt      *time.Time
	Legs            []ParlayLeg
}

type ParlayLeg struct {
	gorm.Model
	ID       uint `gorm:"primaryKey"`
	ParlayID uint
	Position int
	Pick     string
	Odds     float64
}
