package battleship

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// Placement is one proposed ship: a declared type and length plus the
// ordered coordinates it should occupy. The declared length is validated
// against the fixed length for the type, never trusted.
type Placement struct {
	Type      entity.ShipType
	Length    int
	Positions []entity.Coordinate
}

// ValidateFleet checks a full fleet proposal. Rules are applied in a fixed
// order and the first violation wins: fleet composition and lengths, board
// bounds, collinearity and contiguity, and finally overlap across the whole
// fleet. The function is pure; it never touches game state.
func ValidateFleet(placements []Placement) error {
	if err := validateComposition(placements); err != nil {
		return err
	}

	for _, placement := range placements {
		for _, pos := range placement.Positions {
			if !pos.InBounds() {
				return fmt.Errorf("%w: %s %s", apperror.ErrOutOfBounds, placement.Type, pos)
			}
		}
	}

	for _, placement := range placements {
		if err := validateShape(placement); err != nil {
			return err
		}
	}

	return validateOverlap(placements)
}

func validateComposition(placements []Placement) error {
	if len(placements) != entity.FleetSize {
		return fmt.Errorf("%w: all %d ships must be placed", apperror.ErrFleetInvalid, entity.FleetSize)
	}

	seen := make(map[entity.ShipType]bool, entity.FleetSize)

	for _, placement := range placements {
		wantLength, ok := entity.FleetLengths[placement.Type]
		if !ok {
			return fmt.Errorf("%w: unknown ship type %q", apperror.ErrFleetInvalid, placement.Type)
		}

		if seen[placement.Type] {
			return fmt.Errorf("%w: duplicate ship type %s", apperror.ErrFleetInvalid, placement.Type)
		}
		seen[placement.Type] = true

		if placement.Length != wantLength {
			return fmt.Errorf("%w: invalid length for %s", apperror.ErrFleetInvalid, placement.Type)
		}

		if len(placement.Positions) != wantLength {
			return fmt.Errorf("%w: %s needs %d positions", apperror.ErrFleetInvalid, placement.Type, wantLength)
		}
	}

	return nil
}

// validateShape requires the positions of one ship to run along a single row
// or column with no gaps, in the order they were declared.
func validateShape(placement Placement) error {
	horizontal := true
	vertical := true

	first := placement.Positions[0]
	for i, pos := range placement.Positions[1:] {
		prev := placement.Positions[i]

		if pos.Row != first.Row || pos.Col != prev.Col+1 {
			horizontal = false
		}
		if pos.Col != first.Col || pos.Row != prev.Row+1 {
			vertical = false
		}
	}

	if !horizontal && !vertical {
		return fmt.Errorf("%w: %s is not contiguous in one axis", apperror.ErrFleetInvalid, placement.Type)
	}

	return nil
}

func validateOverlap(placements []Placement) error {
	occupied := make(map[entity.Coordinate]bool)

	for _, placement := range placements {
		for _, pos := range placement.Positions {
			if occupied[pos] {
				return fmt.Errorf("%w: ships cannot overlap at %s", apperror.ErrFleetInvalid, pos)
			}
			occupied[pos] = true
		}
	}

	return nil
}

// FleetBoard renders a validated fleet onto a fresh ship board, marking each
// occupied cell with the ship type initial.
func FleetBoard(placements []Placement) (entity.Board, error) {
	var board entity.Board

	for _, placement := range placements {
		for _, pos := range placement.Positions {
			if err := board.Mark(pos, placement.Type.Initial()); err != nil {
				return entity.Board{}, err
			}
		}
	}

	return board, nil
}
