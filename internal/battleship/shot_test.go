package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// shotFixture builds a shooter and a target whose fleet is fully placed.
func shotFixture(t *testing.T) (*entity.Player, *entity.Player, []*entity.Ship) {
	t.Helper()

	placements := validPlacements()

	board, err := FleetBoard(placements)
	require.NoError(t, err)

	target := entity.NewPlayer("target", "game-1")
	target.ShipBoard = board
	target.FleetPlaced = true

	fleet := make([]*entity.Ship, 0, len(placements))
	for _, placement := range placements {
		fleet = append(fleet, &entity.Ship{
			ID:        string(placement.Type),
			OwnerID:   target.ID,
			GameID:    "game-1",
			Type:      placement.Type,
			Positions: placement.Positions,
			Hits:      []entity.Coordinate{},
		})
	}

	return entity.NewPlayer("shooter", "game-1"), target, fleet
}

func TestResolveShot(t *testing.T) {
	t.Run("Miss on open water", func(t *testing.T) {
		// Given: a fresh exchange
		shooter, target, fleet := shotFixture(t)

		// When: firing at an empty cell
		result, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 9, Col: 9})

		// Then: a miss is recorded on the shooter's shot board only
		require.NoError(t, err)
		assert.Equal(t, OutcomeMiss, result.Outcome)
		assert.Empty(t, result.SunkShip)
		assert.False(t, result.AllSunk)

		cell, err := shooter.ShotBoard.At(entity.Coordinate{Row: 9, Col: 9})
		require.NoError(t, err)
		assert.Equal(t, entity.CellMiss, cell)
	})

	t.Run("Hit without sinking", func(t *testing.T) {
		// Given: a fresh exchange
		shooter, target, fleet := shotFixture(t)

		// When: firing at the carrier's bow
		result, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 0, Col: 0})

		// Then: a hit is recorded and the carrier is damaged but afloat
		require.NoError(t, err)
		assert.Equal(t, OutcomeHit, result.Outcome)
		assert.Empty(t, result.SunkShip)

		cell, err := shooter.ShotBoard.At(entity.Coordinate{Row: 0, Col: 0})
		require.NoError(t, err)
		assert.Equal(t, entity.CellHit, cell)

		require.Len(t, fleet[0].Hits, 1)
		assert.False(t, fleet[0].Sunk)
	})

	t.Run("Sinking the destroyer", func(t *testing.T) {
		// Given: a destroyer already hit on its first cell
		shooter, target, fleet := shotFixture(t)

		_, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 8, Col: 0})
		require.NoError(t, err)

		// When: the second cell is hit
		result, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 8, Col: 1})

		// Then: the outcome names the sunk ship, the fleet survives
		require.NoError(t, err)
		assert.Equal(t, OutcomeHit, result.Outcome)
		assert.Equal(t, entity.ShipDestroyer, result.SunkShip)
		assert.False(t, result.AllSunk)
	})

	t.Run("Sinking the last ship reports the whole fleet sunk", func(t *testing.T) {
		// Given: every ship sunk except the destroyer's last cell
		shooter, target, fleet := shotFixture(t)

		for _, ship := range fleet[:4] {
			for _, pos := range ship.Positions {
				_, err := ResolveShot(shooter, target, fleet, pos)
				require.NoError(t, err)
			}
		}

		_, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 8, Col: 0})
		require.NoError(t, err)

		// When: the final cell is hit
		result, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 8, Col: 1})

		// Then: the fleet is reported fully sunk
		require.NoError(t, err)
		assert.Equal(t, entity.ShipDestroyer, result.SunkShip)
		assert.True(t, result.AllSunk)
	})

	t.Run("Repeated shot is rejected regardless of its outcome", func(t *testing.T) {
		// Given: one miss and one hit already on the board
		shooter, target, fleet := shotFixture(t)

		_, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 9, Col: 9})
		require.NoError(t, err)
		_, err = ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: firing at either again
		_, err = ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 9, Col: 9})
		require.ErrorIs(t, err, apperror.ErrAlreadyShot)

		_, err = ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 0, Col: 0})
		require.ErrorIs(t, err, apperror.ErrAlreadyShot)

		// Then: the carrier still has a single hit
		assert.Len(t, fleet[0].Hits, 1)
	})

	t.Run("Out-of-bounds shot is rejected before any state changes", func(t *testing.T) {
		shooter, target, fleet := shotFixture(t)

		_, err := ResolveShot(shooter, target, fleet, entity.Coordinate{Row: 10, Col: 0})
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)

		assert.Equal(t, entity.Board{}, shooter.ShotBoard)
	})

	t.Run("Hit with no matching ship is a consistency error", func(t *testing.T) {
		// Given: a ship board cell with no ship behind it
		shooter, target, _ := shotFixture(t)

		// When: firing at the phantom cell
		_, err := ResolveShot(shooter, target, nil, entity.Coordinate{Row: 0, Col: 0})

		// Then: the action aborts without touching the shot board
		require.ErrorIs(t, err, apperror.ErrInconsistency)

		cell, atErr := shooter.ShotBoard.At(entity.Coordinate{Row: 0, Col: 0})
		require.NoError(t, atErr)
		assert.Equal(t, entity.CellEmpty, cell)
	})
}
