package external

type OddsAPI_Event struct {
	ID       string `json:"id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	SportKey string `json:"sport_key"`
	Commence string `json:"commence_time"`
}

type OddsAPI_EventOdds struct {
	ID         string `json:"id"`
	Bookmakers []struct {
		Key     string `json:"key"`
		Markets []struct {
			Key      string `json:"key"`
			Outcomes []struct {
				Name        string  `json:"name"`
				Description string  `json:"description"`
				Point       float64 `json:"point"`
				Price       float64 `json:"price"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}
