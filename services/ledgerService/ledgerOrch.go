package ledgerService

import (
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"betTrackerBot/models"
)

// UserBalance is one user's net position over every settled wager.
// Positive means net winner.
type UserBalance struct {
	UserID  string
	Name    string
	Balance float64
}

// Debt is the net amount between the subject user and one counterparty.
// Positive means the counterparty owes the subject user.
type Debt struct {
	UserID string
	Name   string
	Amount float64
}

// Record is one user's settled win/loss tally.
type Record struct {
	UserID string
	Name   string
	Wins   int
	Losses int
	WinPct float64
}

// ParseAmount strips the currency prefix and thousands separators from a
// stored amount. Unparseable amounts contribute zero so one corrupt record
// never blocks aggregation over the rest.
func ParseAmount(amount string) float64 {
	cleaned := strings.ReplaceAll(amount, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0
	}
	return v
}

// Balances folds every settled wager into per-user net amounts. The winner
// gains the stake, the loser drops it, so the totals always sum to zero.
func Balances(settled []models.Wager) map[string]*UserBalance {
	balances := make(map[string]*UserBalance)

	for _, w := range settled {
		amount := ParseAmount(w.Amount)
		winnerName, loserName := w.Participant1Name, w.Participant2Name
		if w.WinnerID == w.Participant2ID {
			winnerName, loserName = loserName, winnerName
		}

		credit(balances, w.WinnerID, winnerName, amount)
		credit(balances, w.LoserID(), loserName, -amount)
	}

	return balances
}

func credit(balances map[string]*UserBalance, userID, name string, amount float64) {
	entry, ok := balances[userID]
	if !ok {
		entry = &UserBalance{UserID: userID, Name: name}
		balances[userID] = entry
	}
	entry.Balance += amount
}

// DebtsFor computes the net amount between userID and each counterparty over
// the settled wagers involving them. Recomputing from the counterparty's
// side yields the exact negation.
func DebtsFor(userID string, settled []models.Wager) map[string]*Debt {
	debts := make(map[string]*Debt)

	for _, w := range settled {
		if !w.IsParticipant(userID) {
			continue
		}

		otherID := w.OpponentOf(userID)
		otherName := w.Participant2Name
		if otherID == w.Participant1ID {
			otherName = w.Participant1Name
		}

		entry, ok := debts[otherID]
		if !ok {
			entry = &Debt{UserID: otherID, Name: otherName}
			debts[otherID] = entry
		}

		amount := ParseAmount(w.Amount)
		if w.WinnerID == userID {
			entry.Amount += amount // they owe you
		} else {
			entry.Amount -= amount // you owe them
		}
	}

	return debts
}

// Records tallies settled wins and losses per user. WinPct is 0 for a user
// with no settled wagers.
func Records(settled []models.Wager) map[string]*Record {
	records := make(map[string]*Record)

	tally := func(userID, name string) *Record {
		entry, ok := records[userID]
		if !ok {
			entry = &Record{UserID: userID, Name: name}
			records[userID] = entry
		}
		return entry
	}

	for _, w := range settled {
		winnerName, loserName := w.Participant1Name, w.Participant2Name
		if w.WinnerID == w.Participant2ID {
			winnerName, loserName = loserName, winnerName
		}

		tally(w.WinnerID, winnerName).Wins++
		tally(w.LoserID(), loserName).Losses++
	}

	for _, entry := range records {
		total := entry.Wins + entry.Losses
		if total > 0 {
			entry.WinPct = float64(entry.Wins) / float64(total) * 100
		}
	}

	return records
}

// SortedBalances returns the balances ordered best to worst.
func SortedBalances(balances map[string]*UserBalance) []*UserBalance {
	sorted := make([]*UserBalance, 0, len(balances))
	for _, b := range balances {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Balance != sorted[j].Balance {
			return sorted[i].Balance > sorted[j].Balance
		}
		return sorted[i].UserID < sorted[j].UserID
	})
	return sorted
}

// WorstRecords returns the lowest win percentages among users with at least
// minGames settled wagers, worst first.
func WorstRecords(records map[string]*Record, minGames int) []*Record {
	var eligible []*Record
	for _, r := range records {
		if r.Wins+r.Losses >= minGames {
			eligible = append(eligible, r)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].WinPct != eligible[j].WinPct {
			return eligible[i].WinPct < eligible[j].WinPct
		}
		return eligible[i].UserID < eligible[j].UserID
	})
	return eligible
}

// SettledWagers loads the guild's full settled set. The ledger is recomputed
// from it on every query; there is no incremental cache to fall out of sync.
func SettledWagers(db *gorm.DB, guildID string) ([]models.Wager, error) {
	var settled []models.Wager
	result := db.Where("status = ? AND guild_id = ?", models.WagerStatusSettled, guildID).Find(&settled)
	return settled, result.Error
}
