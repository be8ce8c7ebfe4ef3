package players

// Player is a rostered league player.
type Player struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	TeamID       string `json:"teamId"`
	Position     string `json:"position,omitempty"`
	JerseyNumber string `json:"jerseyNumber,omitempty"`
}

// FullName joins first and last name.
func (p Player) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
