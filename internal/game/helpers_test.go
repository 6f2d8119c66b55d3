package game

import (
	"strings"
	"testing"
)

// buildBoard constructs a board from rows of whitespace-separated
// two-character tokens: `~~` water, `__` land, `|N` artifact, `#N`
// town, `Xn` a tile with letter X owned by player n.
func buildBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	width := len(strings.Fields(rows[0]))
	board := NewBoard(width, len(rows))
	for y, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) != width {
			t.Fatalf("row %d has %d tokens, expected %d", y, len(tokens), width)
		}
		for x, token := range tokens {
			var sq Square
			switch {
			case token == "~~":
				sq = Water()
			case token == "__":
				sq = Land()
			case token[0] == '|':
				sq = Artifact(PlayerID(token[1] - '0'))
			case token[0] == '#':
				sq = Town(PlayerID(token[1] - '0'))
			default:
				sq = Tile(PlayerID(token[1]-'0'), rune(token[0]))
			}
			board.Set(Coordinate{X: x, Y: y}, sq)
		}
	}
	board.CacheSpecialSquares()
	return board
}

// newTestGame creates a game on the given board with the supplied
// wordlist and hands both players a known rack.
func newTestGame(t *testing.T, board *Board, rules Rules, words ...string) *GameState {
	t.Helper()
	g, err := NewGame(7, board, rules, NewJudgeFromWords(words), nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Players[0].Hand = Hand("ABCDEFG")
	g.Players[1].Hand = Hand("ABCDEFG")
	return g
}

// mustApply applies a move that the test expects to succeed.
func mustApply(t *testing.T, g *GameState, m Move) *Event {
	t.Helper()
	ev, err := g.Apply(m)
	if err != nil {
		t.Fatalf("Apply(%v %s): %v", m.Kind, m.At, err)
	}
	return ev
}
