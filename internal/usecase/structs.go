package usecase

import "github.com/rocketscienceinc/battleship-backend/internal/entity"

// ShipState is the per-ship detail exposed to the ship's owner.
type ShipState struct {
	Type      entity.ShipType
	Length    int
	Positions []entity.Coordinate
	Hits      []entity.Coordinate
	Sunk      bool
}

// GameState is the view of a game as seen by one player: their own boards
// and fleet in full, but only the opponent's identifier. Unsunk opponent
// ship positions are never part of this projection.
type GameState struct {
	GameID      string
	Status      string
	CurrentTurn string
	WinnerID    string

	PlayerID    string
	ShipBoard   entity.Board
	ShotBoard   entity.Board
	FleetPlaced bool
	Fleet       []ShipState

	OpponentID string
}
