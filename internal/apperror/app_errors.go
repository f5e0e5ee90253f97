package apperror

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found in this game")

	ErrInvalidState  = errors.New("action is not allowed at this stage of the game")
	ErrGameFull      = errors.New("game already has two players")
	ErrFleetPlaced   = errors.New("ships already placed for this player")
	ErrAlreadyShot   = errors.New("position was already shot at")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrOutOfBounds   = errors.New("position is outside the board")
	ErrFleetInvalid  = errors.New("invalid fleet placement")
	ErrInconsistency = errors.New("internal consistency error")
)
