package game

// Battle resolution. A battle is triggered by a placement 4-adjacent
// to at least one opponent tile. The strongest attacker word is pitted
// against each defender word; collateral contact is always destroyed.

// battleWordFor judges a run and packages it for the report.
func (g *GameState) battleWordFor(w Word) BattleWord {
	text := g.Board.wordText(w)
	return BattleWord{
		Coords: w.Coords,
		Text:   text,
		Valid:  wordCountsAsValid(g.Judge.Lookup(text), g.Rules),
	}
}

// collectCombatants gathers the attacker and defender words for a
// placement by player at the given square.
//
// Defender words are the opponent runs through any opponent tile
// 4-adjacent to the placement. Attacker words are the player's runs
// through the placement or through any of the player's tiles
// 4-adjacent to those contact tiles.
func (g *GameState) collectCombatants(player PlayerID, at Coordinate) (attackers, defenders []Word, contact []Coordinate) {
	for _, n := range g.Board.Neighbors4(at) {
		if g.Board.At(n).OccupiedBy(player.Opponent()) {
			contact = append(contact, n)
		}
	}
	if len(contact) == 0 {
		return nil, nil, nil
	}
	SortCoordinates(contact)

	defenders = g.Board.wordsThroughAll(contact)

	anchors := []Coordinate{at}
	seen := map[Coordinate]bool{at: true}
	for _, d := range contact {
		for _, n := range g.Board.Neighbors4(d) {
			if !seen[n] && g.Board.At(n).OccupiedBy(player) {
				seen[n] = true
				anchors = append(anchors, n)
			}
		}
	}
	attackers = g.Board.wordsThroughAll(anchors)
	return attackers, defenders, contact
}

// strongestAttacker picks the attacker the battle is judged on:
// longest, preferring a valid word among tied lengths, then the word
// containing the placed square, then the lowest (y, x) head.
func strongestAttacker(words []BattleWord, at Coordinate) BattleWord {
	best := words[0]
	for _, w := range words[1:] {
		switch {
		case len(w.Coords) > len(best.Coords):
			best = w
		case len(w.Coords) < len(best.Coords):
		case w.Valid != best.Valid:
			if w.Valid {
				best = w
			}
		case wordContains(w, at) != wordContains(best, at):
			if wordContains(w, at) {
				best = w
			}
		case w.Coords[0].Less(best.Coords[0]):
			best = w
		}
	}
	return best
}

func wordContains(w BattleWord, c Coordinate) bool {
	for _, wc := range w.Coords {
		if wc == c {
			return true
		}
	}
	return false
}

// beats reports whether the strongest attacker destroys the defender
// word: an invalid defender always falls, a valid one only to a
// sufficiently longer attacker.
func beats(strongest BattleWord, defender BattleWord, advantage int) bool {
	if !defender.Valid {
		return true
	}
	return len(strongest.Coords) >= len(defender.Coords)+advantage
}

// resolveBattle computes the battle report for a placement, or nil
// when the placement touches no opponent tile. The board is not
// mutated; the caller applies the doomed set.
func (g *GameState) resolveBattle(player PlayerID, at Coordinate) *BattleReport {
	attackers, defenders, contact := g.collectCombatants(player, at)
	if len(defenders) == 0 {
		return nil
	}

	report := &BattleReport{}
	for _, w := range attackers {
		report.AttackerWords = append(report.AttackerWords, g.battleWordFor(w))
	}
	for _, w := range defenders {
		report.DefenderWords = append(report.DefenderWords, g.battleWordFor(w))
	}

	strongest := strongestAttacker(report.AttackerWords, at)

	attackerEligible := strongest.Valid
	if !g.Rules.AllowInvalidSecondaryAttackers {
		for _, w := range report.AttackerWords {
			if !w.Valid {
				attackerEligible = false
				break
			}
		}
	}

	doomed := make(map[Coordinate]bool)
	if attackerEligible {
		for _, d := range report.DefenderWords {
			if beats(strongest, d, g.Rules.AttackLengthAdvantage) {
				report.AttackerWon = true
				for _, c := range d.Coords {
					doomed[c] = true
				}
			}
		}
	}

	if report.AttackerWon {
		// Collateral: defender tiles touching the placement always
		// fall, even when their word survives.
		for _, c := range contact {
			doomed[c] = true
		}
	} else {
		doomed[at] = true
	}

	report.Doomed = make([]Coordinate, 0, len(doomed))
	for c := range doomed {
		report.Doomed = append(report.Doomed, c)
	}
	SortCoordinates(report.Doomed)
	return report
}
