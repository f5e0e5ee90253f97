package battleship

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

type ShotResult struct {
	Outcome  string
	SunkShip entity.ShipType
	AllSunk  bool
}

// ResolveShot resolves one shot by the shooter against the target's fleet.
// On a miss it records the outcome on the shooter's shot board; on a hit it
// additionally registers the hit on the struck ship and reports whether that
// ship, or the whole fleet, is now sunk. All guards run before any mutation,
// so a returned error leaves both players and the fleet untouched.
func ResolveShot(shooter, target *entity.Player, targetFleet []*entity.Ship, pos entity.Coordinate) (*ShotResult, error) {
	cell, err := shooter.ShotBoard.At(pos)
	if err != nil {
		return nil, err
	}

	if cell != entity.CellEmpty {
		return nil, fmt.Errorf("%w: %s", apperror.ErrAlreadyShot, pos)
	}

	targetCell, err := target.ShipBoard.At(pos)
	if err != nil {
		return nil, err
	}

	if targetCell == entity.CellEmpty {
		if err = shooter.ShotBoard.Mark(pos, entity.CellMiss); err != nil {
			return nil, err
		}

		return &ShotResult{Outcome: OutcomeMiss}, nil
	}

	ship := findShipAt(targetFleet, pos)
	if ship == nil {
		return nil, fmt.Errorf("%w: hit detected at %s but no ship found", apperror.ErrInconsistency, pos)
	}

	if err = shooter.ShotBoard.Mark(pos, entity.CellHit); err != nil {
		return nil, err
	}

	ship.RegisterHit(pos)

	result := &ShotResult{Outcome: OutcomeHit}
	if ship.Sunk {
		result.SunkShip = ship.Type
		result.AllSunk = countSunk(targetFleet) == entity.FleetSize
	}

	return result, nil
}

func findShipAt(fleet []*entity.Ship, pos entity.Coordinate) *entity.Ship {
	for _, ship := range fleet {
		if ship.Occupies(pos) {
			return ship
		}
	}
	return nil
}

func countSunk(fleet []*entity.Ship) int {
	var sunk int
	for _, ship := range fleet {
		if ship.Sunk {
			sunk++
		}
	}
	return sunk
}
