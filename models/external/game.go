package external

// Game is the read-only snapshot of one scoreboard event that the rest of the
// bot works with. Winner is the winning team's display name, "Tie" when the
// final score is level, and empty while the game is still in progress.
type Game struct {
	ID         string
	Name       string
	Date       string
	Status     string
	Completed  bool
	HomeTeam   string
	HomeAbbrev string
	HomeScore  string
	AwayTeam   string
	AwayAbbrev string
	AwayScore  string
	Winner     string
}

// GameLine is one event's betting line for the lines command.
type GameLine struct {
	Sport     string
	HomeTeam  string
	AwayTeam  string
	Status    string
	Score     string
	Spread    string
	OverUnder float64
	Details   string
}
