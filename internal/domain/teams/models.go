package teams

// Team is a league team. Name is used for display and as the last standings tie-break.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	City         string `json:"city,omitempty"`
	Division     string `json:"division,omitempty"`
}
