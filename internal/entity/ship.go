package entity

const (
	ShipCarrier    ShipType = "Carrier"
	ShipBattleship ShipType = "Battleship"
	ShipCruiser    ShipType = "Cruiser"
	ShipSubmarine  ShipType = "Submarine"
	ShipDestroyer  ShipType = "Destroyer"

	FleetSize = 5
)

type ShipType string

// FleetLengths is the fixed fleet composition: one ship of each type.
var FleetLengths = map[ShipType]int{
	ShipCarrier:    5,
	ShipBattleship: 4,
	ShipCruiser:    3,
	ShipSubmarine:  3,
	ShipDestroyer:  2,
}

func (that ShipType) Length() int {
	return FleetLengths[that]
}

// Initial is the marker used for this ship type on the owner's ship board.
func (that ShipType) Initial() Cell {
	if that == "" {
		return CellEmpty
	}
	return Cell(that[:1])
}

type Ship struct {
	ID        string       `json:"id"`
	OwnerID   string       `json:"owner_id"`
	GameID    string       `json:"game_id"`
	Type      ShipType     `json:"type"`
	Positions []Coordinate `json:"positions"`
	Hits      []Coordinate `json:"hits"`
	Sunk      bool         `json:"is_sunk"`
}

func (that *Ship) Occupies(pos Coordinate) bool {
	for _, p := range that.Positions {
		if p == pos {
			return true
		}
	}
	return false
}

func (that *Ship) IsHitAt(pos Coordinate) bool {
	for _, p := range that.Hits {
		if p == pos {
			return true
		}
	}
	return false
}

// RegisterHit records a hit on pos and re-derives the sunk flag. Recording
// the same position twice is a no-op, so sunk flips true exactly once.
func (that *Ship) RegisterHit(pos Coordinate) {
	if !that.Occupies(pos) || that.IsHitAt(pos) {
		return
	}

	that.Hits = append(that.Hits, pos)

	if len(that.Hits) == len(that.Positions) {
		that.Sunk = true
	}
}
