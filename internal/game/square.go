package game

import "fmt"

// SquareKind tags the variant held in a board square.
type SquareKind int

const (
	SquareWater SquareKind = iota
	SquareLand
	SquareOccupied
	SquareArtifact
	SquareTown
)

// String returns the kind name.
func (k SquareKind) String() string {
	switch k {
	case SquareWater:
		return "Water"
	case SquareLand:
		return "Land"
	case SquareOccupied:
		return "Occupied"
	case SquareArtifact:
		return "Artifact"
	case SquareTown:
		return "Town"
	default:
		return "Unknown"
	}
}

// Square is a single board cell. Owner and Letter are only meaningful
// for the kinds that carry them; Defeated only for towns.
type Square struct {
	Kind     SquareKind `json:"kind"`
	Owner    PlayerID   `json:"owner,omitempty"`
	Letter   rune       `json:"letter,omitempty"`
	Defeated bool       `json:"defeated,omitempty"`
}

// Water returns an impassable background square.
func Water() Square {
	return Square{Kind: SquareWater}
}

// Land returns an empty playable square.
func Land() Square {
	return Square{Kind: SquareLand}
}

// Tile returns a square occupied by a player's letter tile.
func Tile(owner PlayerID, letter rune) Square {
	return Square{Kind: SquareOccupied, Owner: owner, Letter: letter}
}

// Artifact returns a player's artifact square.
func Artifact(owner PlayerID) Square {
	return Square{Kind: SquareArtifact, Owner: owner}
}

// Town returns a player's town square.
func Town(owner PlayerID) Square {
	return Square{Kind: SquareTown, Owner: owner}
}

// OccupiedBy reports whether the square holds a tile owned by p.
func (s Square) OccupiedBy(p PlayerID) bool {
	return s.Kind == SquareOccupied && s.Owner == p
}

// Token renders the square in the two-character board text format.
func (s Square) Token() string {
	switch s.Kind {
	case SquareWater:
		return "~~"
	case SquareLand:
		return "__"
	case SquareArtifact:
		return fmt.Sprintf("|%d", s.Owner)
	case SquareTown:
		return fmt.Sprintf("#%d", s.Owner)
	case SquareOccupied:
		return fmt.Sprintf("%c%d", s.Letter, s.Owner)
	default:
		return "??"
	}
}
