package external

type ESPN_InjuryReport struct {
	Items []struct {
		Team struct {
			DisplayName string `json:"displayName"`
		} `json:"team"`
		Injuries []struct {
			Status  string `json:"status"`
			Athlete struct {
				DisplayName string `json:"displayName"`
			} `json:"athlete"`
			Type struct {
				Description string `json:"description"`
			} `json:"type"`
			Details struct {
				Detail string `json:"detail"`
			} `json:"details"`
		} `json:"injuries"`
	} `json:"items"`
}

// Injury is one player's flattened injury-report entry.
type Injury struct {
	Player string
	Team   string
	Status string
	Injury string
	Detail string
}
