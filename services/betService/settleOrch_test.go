package betService

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
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

func TestSettleIfOpen(t *testing.T) {
	t.Run("open wager settles", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `wagers` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		settled, err := SettleIfOpen(db, 1, "111")
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if !settled {
			t.Error("Expected open wager to settle")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("second settle attempt is a no-op", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		// The conditional update matches zero rows once the status has
		// already moved off open.
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `wagers` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		settled, err := SettleIfOpen(db, 1, "111")
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if settled {
			t.Error("Expected already-resolved wager not to settle again")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}

func TestCancelIfOpen(t *testing.T) {
	t.Run("open wager cancels", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `wagers` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		cancelled, err := CancelIfOpen(db, 2)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if !cancelled {
			t.Error("Expected open wager to cancel")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("resolved wager does not cancel", func(t *testing.T) {
		db, mock, err := newMockDB()
		if err != nil {
			t.Fatalf("Failed to create mock DB: %v", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			sqlDB.Close()
		}()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `wagers` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		cancelled, err := CancelIfOpen(db, 2)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if cancelled {
			t.Error("Expected resolved wager not to cancel")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})
}
