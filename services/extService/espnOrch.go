package extService

import (
	"encoding/json"
	"fmt"
	"strconv"

	"betTrackerBot/models/external"
	"betTrackerBot/services/common"
)

// Sports with a scoreboard we can auto-match wagers against.
var ScoreboardURLs = map[string]string{
	"nba":    "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/scoreboard",
	"nfl":    "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard",
	"soccer": "https://site.api.espn.com/apis/site/v2/sports/soccer/usa.1/scoreboard",
	"epl":    "https://site.api.espn.com/apis/site/v2/sports/soccer/eng.1/scoreboard",
}

// Sports with betting lines on the scoreboard feed.
var LineSports = map[string]string{
	"nba":    "basketball/nba",
	"nfl":    "football/nfl",
	"mlb":    "baseball/mlb",
	"nhl":    "hockey/nhl",
	"soccer": "soccer/usa.1",
	"epl":    "soccer/eng.1",
	"ncaab":  "basketball/mens-college-basketball",
	"ncaaf":  "football/college-football",
}

// FetchScores pulls the scoreboard for one sport and derives Game snapshots.
func FetchScores(sport string) ([]external.Game, error) {
	url, ok := ScoreboardURLs[sport]
	if !ok {
		return nil, fmt.Errorf("unknown sport %q", sport)
	}

	resp, err := common.ESPNWrapper(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var scoreboard external.ESPN_Scoreboard
	if err := json.NewDecoder(resp.Body).Decode(&scoreboard); err != nil {
		return nil, err
	}

	var games []external.Game
	for _, event := range scoreboard.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]
		if len(comp.Competitors) < 2 {
			continue
		}

		home, away := pickSides(comp.Competitors)

		game := external.Game{
			ID:         event.ID,
			Name:       event.Name,
			Date:       event.Date,
			Status:     event.Status.Type.Description,
			Completed:  event.Status.Type.Completed,
			HomeTeam:   home.Team.DisplayName,
			HomeAbbrev: home.Team.Abbreviation,
			HomeScore:  home.Score,
			AwayTeam:   away.Team.DisplayName,
			AwayAbbrev: away.Team.Abbreviation,
			AwayScore:  away.Score,
		}

		if game.Completed {
			homeScore := scoreOrZero(game.HomeScore)
			awayScore := scoreOrZero(game.AwayScore)
			switch {
			case homeScore > awayScore:
				game.Winner = game.HomeTeam
			case awayScore > homeScore:
				game.Winner = game.AwayTeam
			default:
				game.Winner = "Tie"
			}
		}

		games = append(games, game)
	}

	return games, nil
}

// FetchAllScores gathers games across every scoreboard sport. A failing feed
// contributes nothing rather than aborting the rest.
func FetchAllScores() []external.Game {
	var all []external.Game
	for _, sport := range []string{"nba", "nfl", "soccer", "epl"} {
		games, err := FetchScores(sport)
		if err != nil {
			continue
		}
		all = append(all, games...)
	}
	return all
}

// FetchLines pulls current betting lines for one sport.
func FetchLines(sport string) ([]external.GameLine, error) {
	path, ok := LineSports[sport]
	if !ok {
		return nil, fmt.Errorf("unknown sport %q", sport)
	}

	resp, err := common.ESPNWrapper(fmt.Sprintf("https://site.api.espn.com/apis/site/v2/sports/%s/scoreboard", path))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var scoreboard external.ESPN_Scoreboard
	if err := json.NewDecoder(resp.Body).Decode(&scoreboard); err != nil {
		return nil, err
	}

	var lines []external.GameLine
	for _, event := range scoreboard.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]
		if len(comp.Competitors) < 2 {
			continue
		}

		home, away := pickSides(comp.Competitors)

		line := external.GameLine{
			Sport:    sport,
			HomeTeam: home.Team.DisplayName,
			AwayTeam: away.Team.DisplayName,
			Status:   event.Status.Type.ShortDetail,
		}

		if event.Status.Type.State != "pre" {
			line.Score = fmt.Sprintf("%s-%s", away.Score, home.Score)
		}

		if len(comp.Odds) > 0 {
			odds := comp.Odds[0]
			line.Details = odds.Details
			line.OverUnder = odds.OverUnder
			if odds.Spread != 0 {
				favorite := home.Team.DisplayName
				if odds.FavoriteTeamID != "" && odds.FavoriteTeamID == away.Team.ID {
					favorite = away.Team.DisplayName
				}
				line.Spread = fmt.Sprintf("%s %+.1f", favorite, odds.Spread)
			}
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func pickSides(competitors []external.ESPN_Competitor) (home, away external.ESPN_Competitor) {
	home, away = competitors[0], competitors[1]
	for _, c := range competitors {
		if c.HomeAway == "home" {
			home = c
		} else if c.HomeAway == "away" {
			away = c
		}
	}
	return home, away
}

func scoreOrZero(score string) int {
	n, err := strconv.Atoi(score)
	if err != nil {
		return 0
	}
	return n
}
