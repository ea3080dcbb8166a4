package parseService

import (
	"math"
	"testing"
)

func TestParseParlayText_MultiLine(t *testing.T) {
	text := "Lakers ML -110\nChiefs -3 +100\nOver 220"
	legs := ParseParlayText(text)

	if len(legs) != 3 {
		t.Fatalf("expected 3 legs, got %d: %+v", len(legs), legs)
	}

	assertEqual(t, "Lakers ML", legs[0].Pick, "leg 1 pick")
	if math.Abs(legs[0].Odds-1.9091) > 1e-3 {
		t.Errorf("leg 1 odds: expected 1.9091, got %.4f", legs[0].Odds)
	}
	assertEqual(t, "Chiefs -3", legs[1].Pick, "leg 2 pick")
	assertEqual(t, 2.0, legs[1].Odds, "leg 2 odds")
	assertEqual(t, "Over 220", legs[2].Pick, "leg 3 pick")
	assertEqual(t, 1.0, legs[2].Odds, "leg 3 odds")
}

func TestParseParlayText_CommaSeparated(t *testing.T) {
	legs := ParseParlayText("Lakers ML, Over 220, Celtics +150")

	if len(legs) != 3 {
		t.Fatalf("expected 3 legs, got %d: %+v", len(legs), legs)
	}
	assertEqual(t, "Lakers ML", legs[0].Pick, "leg 1 pick")
	assertEqual(t, "Over 220", legs[1].Pick, "leg 2 pick")
	assertEqual(t, "Celtics", legs[2].Pick, "leg 3 pick")
	assertEqual(t, 2.5, legs[2].Odds, "leg 3 odds")
}

func TestParseParlayText_PrefixAndNoiseStripping(t *testing.T) {
	text := "Parlay\n1. Lakers ML\n- Chiefs +150\nLeg 3: Over 220\n# just a comment\n/start"
	legs := ParseParlayText(text)

	if len(legs) != 3 {
		t.Fatalf("expected 3 legs, got %d: %+v", len(legs), legs)
	}
	assertEqual(t, "Lakers ML", legs[0].Pick, "ordinal prefix stripped")
	assertEqual(t, "Chiefs", legs[1].Pick, "bullet prefix stripped")
	assertEqual(t, "Over 220", legs[2].Pick, "leg label stripped")
}

func TestParseParlayText_OddsTailFormats(t *testing.T) {
	tests := []struct {
		name string
		line string
		pick string
		odds float64
	}{
		{"at-sign decimal", "Lakers win @ 1.95", "Lakers win", 1.95},
		{"parenthesized decimal", "Chiefs cover (1.91)", "Chiefs cover", 1.91},
		{"parenthesized american", "Celtics ML (+150)", "Celtics ML", 2.5},
		{"bare trailing decimal", "Yankees ML 1.95", "Yankees ML", 1.95},
		{"no odds", "Warriors in six", "Warriors in six", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs := ParseParlayText(tt.line)
			if len(legs) != 1 {
				t.Fatalf("expected 1 leg, got %d: %+v", len(legs), legs)
			}
			assertEqual(t, tt.pick, legs[0].Pick, "pick")
			if math.Abs(legs[0].Odds-tt.odds) > 1e-3 {
				t.Errorf("odds: expected %.4f, got %.4f", tt.odds, legs[0].Odds)
			}
		})
	}
}

func TestParseParlayText_TrailingPunctuationStripped(t *testing.T) {
	// Multi-line input, so the comma inside a line is not treated as a leg
	// separator and survives until the pick cleanup.
	legs := ParseParlayText("Bruins ML, +120\nStars ML")

	if len(legs) != 2 {
		t.Fatalf("expected 2 legs, got %d: %+v", len(legs), legs)
	}
	assertEqual(t, "Bruins ML", legs[0].Pick, "comma stripped from pick")
	if math.Abs(legs[0].Odds-2.2) > 1e-3 {
		t.Errorf("odds: expected 2.2, got %.4f", legs[0].Odds)
	}
	assertEqual(t, "Stars ML", legs[1].Pick, "second leg pick")
}

func TestParseParlayText_SingleLineCommaSplitBeatsOddsTail(t *testing.T) {
	// On a single line the comma is a leg separator, so "+120" becomes its
	// own fragment and is dropped as too short rather than read as odds.
	legs := ParseParlayText("Bruins ML, +120")

	if len(legs) != 1 {
		t.Fatalf("expected 1 leg, got %d: %+v", len(legs), legs)
	}
	assertEqual(t, "Bruins ML", legs[0].Pick, "pick")
	assertEqual(t, 1.0, legs[0].Odds, "odds")
}

func TestParseParlayText_ShortPicksDropped(t *testing.T) {
	legs := ParseParlayText("a\nLakers ML")
	if len(legs) != 1 {
		t.Fatalf("expected 1 leg, got %d: %+v", len(legs), legs)
	}
	assertEqual(t, "Lakers ML", legs[0].Pick, "pick")
}

func TestParseParlayText_Empty(t *testing.T) {
	if legs := ParseParlayText(""); len(legs) != 0 {
		t.Errorf("expected no legs, got %+v", legs)
	}
	if legs := ParseParlayText("parlay"); len(legs) != 0 {
		t.Errorf("expected noise word to yield no legs, got %+v", legs)
	}
}

func TestTotalOdds(t *testing.T) {
	legs := []Leg{
		{Pick: "Lakers win", Odds: 2.5},
		{Pick: "Chiefs cover", Odds: 1.91},
	}
	total := TotalOdds(legs)
	if math.Abs(total-4.775) > 1e-6 {
		t.Errorf("expected total odds 4.775, got %.4f", total)
	}

	if got := TotalOdds(nil); got != 1.0 {
		t.Errorf("expected empty parlay total 1.0, got %.4f", got)
	}
}
