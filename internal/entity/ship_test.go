package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destroyer() *Ship {
	return &Ship{
		ID:        "ship-1",
		OwnerID:   "player-1",
		GameID:    "game-1",
		Type:      ShipDestroyer,
		Positions: []Coordinate{{Row: 8, Col: 0}, {Row: 8, Col: 1}},
		Hits:      []Coordinate{},
	}
}

func TestShip_RegisterHit(t *testing.T) {
	t.Run("Sinks exactly when all positions are hit", func(t *testing.T) {
		// Given: an untouched destroyer
		ship := destroyer()

		// When: the first cell is hit
		ship.RegisterHit(Coordinate{Row: 8, Col: 0})

		// Then: the ship is damaged but afloat
		require.Len(t, ship.Hits, 1)
		assert.False(t, ship.Sunk)

		// When: the last cell is hit
		ship.RegisterHit(Coordinate{Row: 8, Col: 1})

		// Then: the ship is sunk
		assert.True(t, ship.Sunk)
	})

	t.Run("Ignores repeated hits on the same position", func(t *testing.T) {
		// Given: a destroyer hit once
		ship := destroyer()
		ship.RegisterHit(Coordinate{Row: 8, Col: 0})

		// When: the same cell is hit again
		ship.RegisterHit(Coordinate{Row: 8, Col: 0})

		// Then: hits do not grow and the ship is still afloat
		require.Len(t, ship.Hits, 1)
		assert.False(t, ship.Sunk)
	})

	t.Run("Ignores positions the ship does not occupy", func(t *testing.T) {
		// Given: an untouched destroyer
		ship := destroyer()

		// When: a hit lands off the ship
		ship.RegisterHit(Coordinate{Row: 0, Col: 0})

		// Then: nothing is recorded
		assert.Empty(t, ship.Hits)
		assert.False(t, ship.Sunk)
	})
}

func TestShip_Occupies(t *testing.T) {
	ship := destroyer()

	assert.True(t, ship.Occupies(Coordinate{Row: 8, Col: 1}))
	assert.False(t, ship.Occupies(Coordinate{Row: 8, Col: 2}))
}

func TestShipType_Initial(t *testing.T) {
	assert.Equal(t, Cell("C"), ShipCarrier.Initial())
	assert.Equal(t, Cell("D"), ShipDestroyer.Initial())
	assert.Equal(t, CellEmpty, ShipType("").Initial())
}
