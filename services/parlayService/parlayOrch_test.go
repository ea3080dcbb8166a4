package parlayService

import (
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bwmarrin/discordgo"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"betTrackerBot/models"
	"betTrackerBot/services/parseService"
)

func newMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})

	return gormDB, mock, err
}

func testMessage() *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			GuildID:   "guild1",
			ChannelID: "chan1",
			Author:    &discordgo.User{ID: "999", Username: "tester"},
		},
	}
}

func TestCreateParlay_NoLegs(t *testing.T) {
	_, err := CreateParlay(nil, testMessage(), "tester", "$20", nil, "manual")
	if !errors.Is(err, ErrNoLegs) {
		t.Errorf("expected ErrNoLegs, got %v", err)
	}
}

func TestCreateParlay_PayoutFromLegOdds(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `parlays`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `parlay_legs`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	legs := []parseService.Leg{
		{Pick: "Lakers win", Odds: 2.5},
		{Pick: "Chiefs cover", Odds: 1.91},
	}

	parlay, err := CreateParlay(db, testMessage(), "tester", "$20", legs, "manual")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if parlay.PotentialPayout != "$95.50" {
		t.Errorf("expected potential payout $95.50, got %q", parlay.PotentialPayout)
	}
	if parlay.TotalOdds < 4.774 || parlay.TotalOdds > 4.776 {
		t.Errorf("expected total odds ~4.775, got %v", parlay.TotalOdds)
	}
	if len(parlay.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(parlay.Legs))
	}
	if parlay.Legs[0].Position != 1 || parlay.Legs[1].Position != 2 {
		t.Errorf("expected leg positions 1 and 2, got %d and %d",
			parlay.Legs[0].Position, parlay.Legs[1].Position)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestCreateParlay_NoStakeNoPayout(t *testing.T) {
	db, mock, err := newMockDB()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `parlays`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `parlay_legs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	legs := []parseService.Leg{{Pick: "Lakers ML", Odds: 1.0}}

	parlay, err := CreateParlay(db, testMessage(), "tester", "", legs, "manual")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if parlay.PotentialPayout != "" {
		t.Errorf("expected no payout without a stake, got %q", parlay.PotentialPayout)
	}
}

func TestDeleteParlay(t *testing.T) {
	t.Run("owner deletes own parlay", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectQuery("SELECT \\* FROM `parlays`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
				AddRow(3, "999", models.ParlayStatusOpen))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `parlays` SET `deleted_at`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		if err := DeleteParlay(db, 3, "999"); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("someone else's parlay is refused", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectQuery("SELECT \\* FROM `parlays`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
				AddRow(3, "111", models.ParlayStatusOpen))

		err = DeleteParlay(db, 3, "999")
		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
		// No delete statement may run for someone else's parlay.
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("missing parlay reports not found", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectQuery("SELECT \\* FROM `parlays`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}))

		err = DeleteParlay(db, 42, "999")
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("expected gorm.ErrRecordNotFound, got %v", err)
		}
	})
}

func TestSplitStake(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		stake string
		rest  string
	}{
		{"leading stake", "$20 Lakers ML, Chiefs -3", "$20", "Lakers ML, Chiefs -3"},
		{"no stake", "Lakers ML, Chiefs -3", "", "Lakers ML, Chiefs -3"},
		{"dollar sign alone is not a stake", "$ Lakers ML", "", "$ Lakers ML"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stake, rest := splitStake(tt.text)
			if stake != tt.stake {
				t.Errorf("stake: expected %q, got %q", tt.stake, stake)
			}
			if rest != tt.rest {
				t.Errorf("rest: expected %q, got %q", tt.rest, rest)
			}
		})
	}
}

func TestFormatParlay(t *testing.T) {
	parlay := &models.Parlay{
		ID:              7,
		UserName:        "tester",
		Stake:           "$20",
		TotalOdds:       4.775,
		PotentialPayout: "$95.50",
		Status:          models.ParlayStatusOpen,
		Legs: []models.ParlayLeg{
			{Position: 1, Pick: "Lakers win", Odds: 2.5},
			{Position: 2, Pick: "Warriors in six", Odds: 1.0},
		},
	}

	out := FormatParlay(parlay)

	if !strings.Contains(out, "Parlay #7") {
		t.Errorf("expected parlay ID in output: %q", out)
	}
	if !strings.Contains(out, "Stake: $20 → Potential: $95.50") {
		t.Errorf("expected stake line in output: %q", out)
	}
	if !strings.Contains(out, "1. Lakers win (2.50)") {
		t.Errorf("expected leg with odds in output: %q", out)
	}
	if strings.Contains(out, "Warriors in six (") {
		t.Errorf("legs without odds should not show a multiplier: %q", out)
	}
	if strings.Contains(out, "WON") || strings.Contains(out, "LOST") {
		t.Errorf("open parlay should have no result line: %q", out)
	}

	parlay.Status = models.ParlayStatusWon
	if !strings.Contains(FormatParlay(parlay), "**WON!**") {
		t.Error("expected WON marker for a won parlay")
	}
}
