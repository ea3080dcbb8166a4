package propsService

import (
	"math"
	"sort"
	"strings"
	"time"
)

// PropLine is one sportsbook prop: a player, a stat category, and the line.
// Categories follow the books' shorthand: "pts", "ast", "reb".
type PropLine struct {
	Player   string
	Category string
	Line     float64
}

// Edge compares one prop line to the loaded projection for that player.
type Edge struct {
	Player    string
	Team      string
	Line      float64
	Projected float64
	Delta     float64
	Side      string // "OVER" or "UNDER"
}

// EdgeReport groups the biggest projected edges per category.
type EdgeReport struct {
	Points      []Edge
	Assists     []Edge
	Rebounds    []Edge
	LastUpdated time.Time
}

const edgesPerCategory = 10

// CompareToProps joins prop lines to the projection snapshot and returns the
// biggest disagreements per category. ok is false when no projections have
// been uploaded yet.
func CompareToProps(store *ProjectionStore, props []PropLine) (*EdgeReport, bool) {
	projections, updatedAt, ok := store.Current()
	if !ok {
		return nil, false
	}

	report := &EdgeReport{LastUpdated: updatedAt}

	for _, prop := range props {
		projection, found := matchProjection(projections, prop.Player)
		if !found {
			continue
		}

		var projected float64
		switch prop.Category {
		case "pts":
			projected = projection.Points
		case "ast":
			projected = projection.Assists
		case "reb":
			projected = projection.Rebounds
		default:
			continue
		}

		edge := Edge{
			Player:    prop.Player,
			Team:      projection.Team,
			Line:      prop.Line,
			Projected: projected,
			Delta:     projected - prop.Line,
			Side:      "UNDER",
		}
		if edge.Delta > 0 {
			edge.Side = "OVER"
		}

		switch prop.Category {
		case "pts":
			report.Points = append(report.Points, edge)
		case "ast":
			report.Assists = append(report.Assists, edge)
		case "reb":
			report.Rebounds = append(report.Rebounds, edge)
		}
	}

	report.Points = topEdges(report.Points)
	report.Assists = topEdges(report.Assists)
	report.Rebounds = topEdges(report.Rebounds)

	return report, true
}

// matchProjection finds a projection by full-name containment, then by equal
// last names longer than 3 characters (book and projection feeds rarely
// agree on exact spellings).
func matchProjection(projections map[string]Projection, player string) (Projection, bool) {
	name := strings.ToLower(strings.TrimSpace(player))

	for key, projection := range projections {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return projection, true
		}
	}

	propLast := lastWord(name)
	if len(propLast) <= 3 {
		return Projection{}, false
	}
	for key, projection := range projections {
		if lastWord(key) == propLast {
			return projection, true
		}
	}

	return Projection{}, false
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func topEdges(edges []Edge) []Edge {
	sort.SliceStable(edges, func(i, j int) bool {
		return math.Abs(edges[i].Delta) > math.Abs(edges[j].Delta)
	})
	if len(edges) > edgesPerCategory {
		edges = edges[:edgesPerCategory]
	}
	return edges
}
