package game

// PlayerID identifies one of the two sides. Truncate is strictly a
// two-player game.
type PlayerID int

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	return 1 - p
}

// Hand is the ordered sequence of letters a player holds. Order is
// user-visible: when a tile is played, the freshly drawn tile lands in
// the vacated index and the remaining tiles do not shift.
type Hand []rune

// IndexOf returns the position of the first matching letter, or -1.
func (h Hand) IndexOf(letter rune) int {
	for i, l := range h {
		if l == letter {
			return i
		}
	}
	return -1
}

// String renders the hand as a plain letter string.
func (h Hand) String() string {
	return string(h)
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// Player holds the per-side mutable state outside the board.
type Player struct {
	ID       PlayerID `json:"id"`
	Hand     Hand     `json:"hand"`
	Resigned bool     `json:"resigned"`

	// turnsTaken counts this player's own completed turns; swap
	// cooldown is measured in these units.
	turnsTaken   int
	lastSwapTurn int // own-turn number of the last swap, -1 if never
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(id PlayerID) *Player {
	return &Player{
		ID:           id,
		Hand:         Hand{},
		lastSwapTurn: -1,
	}
}

// swapOnCooldown reports whether a swap this turn would violate the
// cooldown. The turn about to be taken is turnsTaken+1.
func (p *Player) swapOnCooldown(cooldown int) bool {
	if cooldown <= 0 || p.lastSwapTurn < 0 {
		return false
	}
	return (p.turnsTaken+1)-p.lastSwapTurn <= cooldown
}
