package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

const BoardSize = 10

const (
	CellEmpty Cell = ""
	CellHit   Cell = "H"
	CellMiss  Cell = "M"
)

// Cell is a single board marker: empty, a ship type initial on the ship
// board, or a shot outcome on the shot board.
type Cell string

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Coordinate) String() string {
	return fmt.Sprintf("[%d,%d]", that.Row, that.Col)
}

// Board is a 10x10 grid addressed only through bounds-checked accessors.
type Board [BoardSize][BoardSize]Cell

func (that *Board) At(pos Coordinate) (Cell, error) {
	if !pos.InBounds() {
		return CellEmpty, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	return that[pos.Row][pos.Col], nil
}

func (that *Board) Mark(pos Coordinate, cell Cell) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	that[pos.Row][pos.Col] = cell

	return nil
}
