package game

// MoveKind tags the move variant.
type MoveKind int

const (
	MovePlace MoveKind = iota
	MoveSwap
	// MoveTimeExpired and MoveResign only appear in synthetic events;
	// Apply rejects them.
	MoveTimeExpired
	MoveResign
)

// String returns the kind name.
func (k MoveKind) String() string {
	switch k {
	case MovePlace:
		return "Place"
	case MoveSwap:
		return "Swap"
	case MoveTimeExpired:
		return "TimeExpired"
	case MoveResign:
		return "Resign"
	default:
		return "Unknown"
	}
}

// Move is the single input to the state machine.
type Move struct {
	Kind   MoveKind   `json:"kind"`
	Player PlayerID   `json:"player"`
	At     Coordinate `json:"at,omitempty"`     // place
	Letter rune       `json:"letter,omitempty"` // place
	A      Coordinate `json:"a,omitempty"`      // swap
	B      Coordinate `json:"b,omitempty"`      // swap
}

// Place builds a placement move.
func Place(player PlayerID, at Coordinate, letter rune) Move {
	return Move{Kind: MovePlace, Player: player, At: at, Letter: letter}
}

// Swap builds a swap move between two of the player's tiles.
func Swap(player PlayerID, a, b Coordinate) Move {
	return Move{Kind: MoveSwap, Player: player, A: a, B: b}
}
