package entity

type Player struct {
	ID          string `json:"id"`
	GameID      string `json:"game_id"`
	ShipBoard   Board  `json:"ship_board"`
	ShotBoard   Board  `json:"shot_board"`
	FleetPlaced bool   `json:"ships_placed"`
}

// NewPlayer creates a participant session with empty boards.
func NewPlayer(id, gameID string) *Player {
	return &Player{
		ID:     id,
		GameID: gameID,
	}
}
