package propsService

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleProjectionsUpload loads an uploaded projections CSV into the store.
func HandleProjectionsUpload(s *discordgo.Session, m *discordgo.MessageCreate, store *ProjectionStore, csvContent string) {
	count, err := store.Load(csvContent)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Couldn't read that projections CSV: %v", err))
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Loaded projections for %d players!", count))
}

// ShowProjections replies with prop edges when prop lines are available, and
// with the top raw projections otherwise.
func ShowProjections(s *discordgo.Session, m *discordgo.MessageCreate, store *ProjectionStore, props []PropLine) {
	if len(props) > 0 {
		report, ok := CompareToProps(store, props)
		if !ok {
			s.ChannelMessageSend(m.ChannelID, "No projections loaded. Upload the CSV first!")
			return
		}

		lines := []string{"**Biggest Prop Edges:**"}
		lines = append(lines, formatEdges("Points", report.Points)...)
		lines = append(lines, formatEdges("Assists", report.Assists)...)
		lines = append(lines, formatEdges("Rebounds", report.Rebounds)...)
		lines = append(lines, fmt.Sprintf("\n_Projections updated %s_", report.LastUpdated.Format("Jan 2 15:04")))
		s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
		return
	}

	snapshot, updatedAt, ok := store.Current()
	if !ok {
		s.ChannelMessageSend(m.ChannelID, "No projections loaded. Upload the CSV first!")
		return
	}

	players := make([]Projection, 0, len(snapshot))
	for _, p := range snapshot {
		players = append(players, p)
	}

	lines := []string{"**Top Projections:**", "", "_Points:_"}
	sort.Slice(players, func(i, j int) bool { return players[i].Points > players[j].Points })
	for _, p := range topN(players, 10) {
		lines = append(lines, fmt.Sprintf("  %s (%s): %.1f pts", p.Name, p.Team, p.Points))
	}

	lines = append(lines, "", "_Assists:_")
	sort.Slice(players, func(i, j int) bool { return players[i].Assists > players[j].Assists })
	for _, p := range topN(players, 10) {
		lines = append(lines, fmt.Sprintf("  %s (%s): %.1f ast", p.Name, p.Team, p.Assists))
	}

	lines = append(lines, fmt.Sprintf("\n_Updated %s_", updatedAt.Format("Jan 2 15:04")))
	s.ChannelMessageSend(m.ChannelID, strings.Join(lines, "\n"))
}

func formatEdges(label string, edges []Edge) []string {
	if len(edges) == 0 {
		return nil
	}
	lines := []string{"", fmt.Sprintf("_%s:_", label)}
	for _, edge := range edges {
		lines = append(lines, fmt.Sprintf("  %s (%s): line %.1f, projected %.1f → %s %+.1f",
			edge.Player, edge.Team, edge.Line, edge.Projected, edge.Side, edge.Delta))
	}
	return lines
}

func topN(players []Projection, n int) []Projection {
	if len(players) > n {
		return players[:n]
	}
	return players
}
