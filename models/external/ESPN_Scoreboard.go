package external

type ESPN_Scoreboard struct {
	Day struct {
		Date string `json:"date"`
	} `json:"day"`
	Events []ESPN_Event `json:"events"`
}

type ESPN_Event struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	Name         string      `json:"name"`
	ShortName    string      `json:"shortName"`
	Competitions []ESPN_Comp `json:"competitions"`
	Status       ESPN_Status `json:"status"`
}

type ESPN_Comp struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Competitors []ESPN_Competitor `json:"competitors"`
	Odds        []ESPN_Odds       `json:"odds"`
	Status      ESPN_Status       `json:"status"`
}

type ESPN_Competitor struct {
	ID       string    `json:"id"`
	HomeAway string    `json:"homeAway"`
	Winner   bool      `json:"winner"`
	Score    string    `json:"score"`
	Team     ESPN_Team `json:"team"`
}

type ESPN_Team struct {
	ID               string `json:"id"`
	Location         string `json:"location"`
	Name             string `json:"name"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
}

type ESPN_Status struct {
	Clock        float64 `json:"clock"`
	DisplayClock string  `json:"displayClock"`
	Period       int     `json:"period"`
	Type         struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		State       string `json:"state"`
		Completed   bool   `json:"completed"`
		Description string `json:"description"`
		Detail      string `json:"detail"`
		ShortDetail string `json:"shortDetail"`
	} `json:"type"`
}

type ESPN_Odds struct {
	Provider struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Priority int    `json:"priority"`
	} `json:"provider"`
	Details        string  `json:"details"`
	OverUnder      float64 `json:"overUnder"`
	Spread         float64 `json:"spread"`
	FavoriteTeamID string  `json:"favoriteTeamId"`
}
