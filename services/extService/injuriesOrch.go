package extService

import (
	"encoding/json"

	"betTrackerBot/models/external"
	"betTrackerBot/services/common"
)

const injuriesURL = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/injuries"

// FetchInjuries pulls the NBA injury report and flattens it to one entry per
// player.
func FetchInjuries() ([]external.Injury, error) {
	resp, err := common.ESPNWrapper(injuriesURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var report external.ESPN_InjuryReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, err
	}

	var injuries []external.Injury
	for _, team := range report.Items {
		for _, entry := range team.Injuries {
			injuries = append(injuries, external.Injury{
				Player: entry.Athlete.DisplayName,
				Team:   team.Team.DisplayName,
				Status: entry.Status,
				Injury: entry.Type.Description,
				Detail: entry.Details.Detail,
			})
		}
	}

	return injuries, nil
}
