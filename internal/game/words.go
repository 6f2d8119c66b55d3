package game

import "strings"

// Word is a maximal straight run of one player's tiles.
type Word struct {
	Coords []Coordinate
}

// Text reads the word's letters off the board.
func (b *Board) wordText(w Word) string {
	var sb strings.Builder
	for _, c := range w.Coords {
		sb.WriteRune(b.At(c).Letter)
	}
	return sb.String()
}

// Contains reports whether the word passes through c.
func (w Word) Contains(c Coordinate) bool {
	for _, wc := range w.Coords {
		if wc == c {
			return true
		}
	}
	return false
}

// key identifies a run by its endpoints, which is enough to
// de-duplicate runs collected from several anchor squares.
func (w Word) key() [2]Coordinate {
	return [2]Coordinate{w.Coords[0], w.Coords[len(w.Coords)-1]}
}

// WordsAt returns the maximal horizontal and vertical runs of the
// owner's tiles passing through c, horizontal first. Length-1 runs
// are dropped when the tile is part of a longer run on the other
// axis; a completely lone tile keeps its single-letter run so it
// still enters battles, where the judge rejects it. Runs read
// left-to-right and top-to-bottom no matter which player owns them;
// orientation is a presentation concern.
func (b *Board) WordsAt(c Coordinate) []Word {
	sq := b.At(c)
	if sq.Kind != SquareOccupied {
		return nil
	}
	owner := sq.Owner

	horizontal := b.runThrough(c, owner, Coordinate{X: 1}, Coordinate{X: -1})
	vertical := b.runThrough(c, owner, Coordinate{Y: 1}, Coordinate{Y: -1})
	if len(horizontal.Coords) == 1 && len(vertical.Coords) == 1 {
		return []Word{horizontal}
	}
	words := make([]Word, 0, 2)
	for _, w := range []Word{horizontal, vertical} {
		if len(w.Coords) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// runThrough walks backwards then forwards from c along one axis,
// collecting the maximal run owned by owner.
func (b *Board) runThrough(c Coordinate, owner PlayerID, forward, backward Coordinate) Word {
	start := c
	for {
		prev := Coordinate{X: start.X + backward.X, Y: start.Y + backward.Y}
		if !b.At(prev).OccupiedBy(owner) {
			break
		}
		start = prev
	}
	coords := []Coordinate{start}
	for {
		next := Coordinate{X: coords[len(coords)-1].X + forward.X, Y: coords[len(coords)-1].Y + forward.Y}
		if !b.At(next).OccupiedBy(owner) {
			break
		}
		coords = append(coords, next)
	}
	return Word{Coords: coords}
}

// wordsThroughAll collects the de-duplicated runs passing through each
// anchor. The result order follows the anchor order, horizontal before
// vertical per anchor, so callers that sort anchors get a
// deterministic word order.
func (b *Board) wordsThroughAll(anchors []Coordinate) []Word {
	seen := make(map[[2]Coordinate]bool)
	var out []Word
	for _, anchor := range anchors {
		for _, w := range b.WordsAt(anchor) {
			k := w.key()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, w)
		}
	}
	return out
}
