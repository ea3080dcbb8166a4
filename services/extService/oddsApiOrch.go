package extService

import (
	"encoding/json"
	"fmt"
	"strings"

	"betTrackerBot/models/external"
	"betTrackerBot/services/common"
	"betTrackerBot/services/propsService"
)

const oddsAPIBase = "https://api.the-odds-api.com/v4/sports/basketball_nba"

// Each event costs an API call, so only today's first few games are polled.
const maxPropEvents = 5

// FetchPlayerProps pulls NBA player prop lines (points, assists, rebounds)
// from The Odds API, first bookmaker only. A failed event is skipped rather
// than failing the whole fetch.
func FetchPlayerProps(apiKey string) ([]propsService.PropLine, error) {
	eventsURL := fmt.Sprintf("%s/events?apiKey=%s", oddsAPIBase, apiKey)
	resp, err := common.ESPNWrapper(eventsURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var events []external.OddsAPI_Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}
	if len(events) > maxPropEvents {
		events = events[:maxPropEvents]
	}

	var props []propsService.PropLine
	for _, event := range events {
		oddsURL := fmt.Sprintf(
			"%s/events/%s/odds?apiKey=%s&regions=us&markets=player_points,player_assists,player_rebounds&oddsFormat=american",
			oddsAPIBase, event.ID, apiKey)
		oddsResp, err := common.ESPNWrapper(oddsURL)
		if err != nil {
			continue
		}

		var eventOdds external.OddsAPI_EventOdds
		decodeErr := json.NewDecoder(oddsResp.Body).Decode(&eventOdds)
		oddsResp.Body.Close()
		if decodeErr != nil {
			continue
		}

		props = append(props, propLines(eventOdds)...)
	}

	return props, nil
}

// propLines flattens one event's odds into prop lines, using only the first
// bookmaker and only the Over side of each market (the line is the same both
// ways).
func propLines(eventOdds external.OddsAPI_EventOdds) []propsService.PropLine {
	if len(eventOdds.Bookmakers) == 0 {
		return nil
	}

	var props []propsService.PropLine
	for _, market := range eventOdds.Bookmakers[0].Markets {
		var category string
		switch {
		case strings.Contains(market.Key, "points"):
			category = "pts"
		case strings.Contains(market.Key, "assists"):
			category = "ast"
		case strings.Contains(market.Key, "rebounds"):
			category = "reb"
		default:
			continue
		}

		for _, outcome := range market.Outcomes {
			if outcome.Name != "Over" || outcome.Description == "" || outcome.Point == 0 {
				continue
			}
			props = append(props, propsService.PropLine{
				Player:   outcome.Description,
				Category: category,
				Line:     outcome.Point,
			})
		}
	}
	return props
}
