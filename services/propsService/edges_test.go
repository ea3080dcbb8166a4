package propsService

import (
	"fmt"
	"testing"
)

func loadedStore(t *testing.T) *ProjectionStore {
	t.Helper()
	store := NewProjectionStore()
	if _, err := store.Load(sampleCSV); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return store
}

func TestCompareToProps(t *testing.T) {
	store := loadedStore(t)

	props := []PropLine{
		{Player: "LeBron James", Category: "pts", Line: 24.5},
		{Player: "Nikola Jokic", Category: "ast", Line: 10.5},
		{Player: "Stephen Curry", Category: "reb", Line: 3.5},
	}

	report, ok := CompareToProps(store, props)
	if !ok {
		t.Fatal("expected a report from a loaded store")
	}

	if len(report.Points) != 1 {
		t.Fatalf("expected 1 points edge, got %d", len(report.Points))
	}
	points := report.Points[0]
	assertEqual(t, "OVER", points.Side, "projection above the line leans over")
	if points.Delta < 0.89 || points.Delta > 0.91 {
		t.Errorf("expected delta 0.9, got %v", points.Delta)
	}

	if len(report.Assists) != 1 {
		t.Fatalf("expected 1 assists edge, got %d", len(report.Assists))
	}
	assertEqual(t, "UNDER", report.Assists[0].Side, "projection below the line leans under")

	if len(report.Rebounds) != 1 {
		t.Fatalf("expected 1 rebounds edge, got %d", len(report.Rebounds))
	}
	rebounds := report.Rebounds[0]
	if rebounds.Projected < 4.49 || rebounds.Projected > 4.51 {
		t.Errorf("expected projected rebounds 4.5, got %v", rebounds.Projected)
	}
}

func TestCompareToProps_NameMatching(t *testing.T) {
	store := loadedStore(t)

	tests := []struct {
		name   string
		player string
	}{
		{"exact", "LeBron James"},
		{"case mismatch", "lebron james"},
		{"partial name", "LeBron"},
		{"last name only", "James"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, ok := CompareToProps(store, []PropLine{{Player: tt.player, Category: "pts", Line: 20.5}})
			if !ok || len(report.Points) != 1 {
				t.Fatalf("expected a match for %q", tt.player)
			}
			assertEqual(t, "LAL", report.Points[0].Team, "matched projection's team")
		})
	}
}

func TestCompareToProps_UnknownPlayerSkipped(t *testing.T) {
	store := loadedStore(t)

	report, ok := CompareToProps(store, []PropLine{
		{Player: "Victor Wembanyama", Category: "pts", Line: 22.5},
	})
	if !ok {
		t.Fatal("expected a report")
	}
	if len(report.Points) != 0 {
		t.Errorf("expected unknown player to be skipped, got %+v", report.Points)
	}
}

func TestCompareToProps_EmptyStore(t *testing.T) {
	if _, ok := CompareToProps(NewProjectionStore(), nil); ok {
		t.Error("expected ok=false with nothing loaded")
	}
}

func TestTopEdges(t *testing.T) {
	var edges []Edge
	for i := 1; i <= 15; i++ {
		edges = append(edges, Edge{Player: fmt.Sprintf("p%d", i), Delta: float64(i) - 7.75})
	}

	top := topEdges(edges)

	if len(top) != edgesPerCategory {
		t.Fatalf("expected %d edges, got %d", edgesPerCategory, len(top))
	}
	assertEqual(t, "p15", top[0].Player, "largest absolute delta first")
	for i := 1; i < len(top); i++ {
		prev, cur := top[i-1].Delta, top[i].Delta
		if abs(prev) < abs(cur) {
			t.Errorf("edges out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
