package game

// BattleWord is one combatant word in a battle report.
type BattleWord struct {
	Coords []Coordinate `json:"coords"`
	Text   string       `json:"text"`
	Valid  bool         `json:"valid"`
}

// BattleReport records a resolved battle. Reports are canonical:
// replaying the same game reproduces them exactly.
type BattleReport struct {
	AttackerWords []BattleWord `json:"attackerWords"`
	DefenderWords []BattleWord `json:"defenderWords"`
	AttackerWon   bool         `json:"attackerWon"`
	// Doomed lists the squares destroyed by this battle in ascending
	// (y, x) order.
	Doomed []Coordinate `json:"doomed"`
}

// Event is the immutable record appended to the log on each applied
// move. Events already appended never change.
type Event struct {
	TurnNumber int      `json:"turnNumber"`
	Player     PlayerID `json:"player"`
	Move       Move     `json:"move"`

	PlacedLetter rune `json:"placedLetter,omitempty"`
	DrawnLetter  rune `json:"drawnLetter,omitempty"`

	Battles []BattleReport `json:"battles,omitempty"`
	// Truncations lists tiles removed for losing their artifact
	// connection, in ascending (y, x) order.
	Truncations []Coordinate `json:"truncations,omitempty"`

	Winner *PlayerID `json:"winner,omitempty"`
}
