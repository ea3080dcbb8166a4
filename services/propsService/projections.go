package propsService

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Projection is one player's projected per-game stat line.
type Projection struct {
	Name     string
	Team     string
	Minutes  float64
	Points   float64
	Assists  float64
	Rebounds float64
	Steals   float64
	Blocks   float64
}

// ProjectionStore holds the latest uploaded projection snapshot. It is an
// explicit injected object with its own lifecycle; nothing else in the
// process keeps projection state.
type ProjectionStore struct {
	mu        sync.RWMutex
	byPlayer  map[string]Projection
	updatedAt time.Time
}

func NewProjectionStore() *ProjectionStore {
	return &ProjectionStore{byPlayer: make(map[string]Projection)}
}

// Load replaces the snapshot with the rows of an uploaded projections CSV,
// keyed by lower-cased player name. Returns how many players were loaded.
func (ps *ProjectionStore) Load(csvContent string) (int, error) {
	reader := csv.NewReader(strings.NewReader(csvContent))
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, errors.New("projections csv has no data rows")
	}

	column := make(map[string]int)
	for i, name := range rows[0] {
		column[strings.TrimSpace(name)] = i
	}
	if _, ok := column["Player"]; !ok {
		return 0, errors.New("projections csv has no Player column")
	}

	projections := make(map[string]Projection)
	for _, row := range rows[1:] {
		player := strings.TrimSpace(cell(row, column, "Player"))
		if player == "" {
			continue
		}
		projections[strings.ToLower(player)] = Projection{
			Name:     player,
			Team:     cell(row, column, "Team"),
			Minutes:  numeric(cell(row, column, "Minutes")),
			Points:   numeric(cell(row, column, "PTS")),
			Assists:  numeric(cell(row, column, "AST")),
			Rebounds: numeric(cell(row, column, "DREB")) + numeric(cell(row, column, "OREB")),
			Steals:   numeric(cell(row, column, "STL")),
			Blocks:   numeric(cell(row, column, "BLK")),
		}
	}

	ps.mu.Lock()
	ps.byPlayer = projections
	ps.updatedAt = time.Now()
	ps.mu.Unlock()

	return len(projections), nil
}

// Current returns the loaded snapshot and its upload time. ok is false when
// nothing has been uploaded yet.
func (ps *ProjectionStore) Current() (map[string]Projection, time.Time, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	if len(ps.byPlayer) == 0 {
		return nil, time.Time{}, false
	}

	snapshot := make(map[string]Projection, len(ps.byPlayer))
	for k, v := range ps.byPlayer {
		snapshot[k] = v
	}
	return snapshot, ps.updatedAt, true
}

func cell(row []string, column map[string]int, name string) string {
	idx, ok := column[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// numeric fails soft: a blank or corrupt stat cell contributes zero.
func numeric(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
