package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

const (
	StatusAwaitingOpponent = "waiting_for_player2"
	StatusPlacingFleets    = "placing_ships"
	StatusInProgress       = "playing"
	StatusFinished         = "finished"
)

type Game struct {
	ID          string `json:"id"`
	Player1ID   string `json:"player1_id"`
	Player2ID   string `json:"player2_id,omitempty"`
	Status      string `json:"status"`
	CurrentTurn string `json:"current_turn,omitempty"`
	WinnerID    string `json:"winner_id,omitempty"`
}

// NewGame creates a game in the awaiting-opponent phase owned by player1.
func NewGame(id, player1ID string) *Game {
	return &Game{
		ID:        id,
		Player1ID: player1ID,
		Status:    StatusAwaitingOpponent,
	}
}

func (that *Game) IsAwaitingOpponent() bool {
	return that.Status == StatusAwaitingOpponent
}

func (that *Game) IsPlacingFleets() bool {
	return that.Status == StatusPlacingFleets
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) HasPlayer(playerID string) bool {
	return playerID != "" && (playerID == that.Player1ID || playerID == that.Player2ID)
}

// OpponentOf returns the other participant's ID.
func (that *Game) OpponentOf(playerID string) (string, error) {
	switch playerID {
	case that.Player1ID:
		return that.Player2ID, nil
	case that.Player2ID:
		return that.Player1ID, nil
	default:
		return "", fmt.Errorf("%w: player %s", apperror.ErrPlayerNotFound, playerID)
	}
}
