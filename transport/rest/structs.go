package rest

import "github.com/rocketscienceinc/battleship-backend/internal/entity"

type shipPayload struct {
	Type      string  `json:"type"`
	Length    int     `json:"length"`
	Positions [][]int `json:"positions"`
}

type placeShipsRequest struct {
	PlayerID string        `json:"playerId"`
	Ships    []shipPayload `json:"ships"`
}

type shootRequest struct {
	PlayerID string `json:"playerId"`
	Position []int  `json:"position"`
}

type gameCreatedResponse struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	Message  string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type shotResponse struct {
	Result   string `json:"result"`
	SunkShip string `json:"sunkShip"`
	Message  string `json:"message"`
	Winner   string `json:"winner"`
}

type shipStateResponse struct {
	Type      entity.ShipType     `json:"type"`
	Length    int                 `json:"length"`
	Positions []entity.Coordinate `json:"positions"`
	Hits      []entity.Coordinate `json:"hits"`
	Sunk      bool                `json:"isSunk"`
}

type gameStateResponse struct {
	GameStatus        string              `json:"gameStatus"`
	CurrentTurn       string              `json:"currentTurn"`
	Winner            string              `json:"winner"`
	PlayerID          string              `json:"playerId"`
	PlayerBoard       entity.Board        `json:"playerBoard"`
	PlayerShotBoard   entity.Board        `json:"playerShotBoard"`
	PlayerShipsPlaced bool                `json:"playerShipsPlaced"`
	MyShips           []shipStateResponse `json:"myShips"`
	OpponentID        string              `json:"opponentId"`
}

type errorResponse struct {
	Error string `json:"error"`
}
