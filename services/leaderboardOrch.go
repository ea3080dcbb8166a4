package services

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betTrackerBot/services/common"
	"betTrackerBot/services/ledgerService"
)

// ShowBalance replies with the sender's net position and who owes whom.
func ShowBalance(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	settled, err := ledgerService.SettledWagers(db, m.GuildID)
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}

	balances := ledgerService.Balances(settled)
	balance := 0.0
	if entry, ok := balances[m.Author.ID]; ok {
		balance = entry.Balance
	}

	var lines []string
	switch {
	case balance > 0:
		lines = append(lines, fmt.Sprintf("**You are up $%.2f**", balance))
	case balance < 0:
		lines = append(lines, fmt.Sprintf("**You are down $%.2f**", -balance))
	default:
		lines = append(lines, "**You are even**")
	}

	var youOwe, theyOwe []string
	for _, debt := range ledgerService.DebtsFor(m.Author.ID, settled) {
		if debt.Amount > 0 {
			theyOwe = append(theyOwe, fmt.Sprintf("%s owes you $%.2f", debt.Name, debt.Amount))
		} else if debt.Amount < 0 {
			youOwe = append(youOwe, fmt.Sprintf("You owe %s $%.2f", debt.Name, -debt.Amount))
		}
	}
	if len(youOwe) > 0 {
		lines = append(lines, "\n"+strings.Join(youOwe, "\n"))
	}
	if len(theyOwe) > 0 {
		lines = append(lines, "\n"+strings.Join(theyOwe, "\n"))
	}

	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

// ShowLeaderboard replies with everyone's net balance, best first.
func ShowLeaderboard(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	settled, err := ledgerService.SettledWagers(db, m.GuildID)
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}

	balances := ledgerService.Balances(settled)
	if len(balances) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No settled bets yet - no balances to show!")
		return
	}

	lines := []string{"**Leaderboard:**"}
	for _, entry := range ledgerService.SortedBalances(balances) {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.Name, common.FormatMoney(entry.Balance)))
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

// ShowShame replies with the worst win percentages (at least 2 settled bets).
func ShowShame(s *discordgo.Session, m *discordgo.MessageCreate, db *gorm.DB) {
	settled, err := ledgerService.SettledWagers(db, m.GuildID)
	if err != nil {
		common.SendError(s, m.ChannelID, m.GuildID, err, db)
		return
	}

	records := ledgerService.Records(settled)
	if len(records) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No settled bets yet!")
		return
	}

	worst := ledgerService.WorstRecords(records, 2)
	if len(worst) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Not enough bets to determine the wall of shame!")
		return
	}
	if len(worst) > 5 {
		worst = worst[:5]
	}

	lines := []string{"**Wall of Shame:**"}
	for i, record := range worst {
		lines = append(lines, fmt.Sprintf("%d. %s: %dW-%dL (%.0f%%)",
			i+1, record.Name, record.Wins, record.Losses, record.WinPct))
	}
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}
