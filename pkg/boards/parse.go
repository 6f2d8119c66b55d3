// Package boards parses and formats the board text format used by
// tests, puzzles, and tutorials. Each non-blank line is a row of
// two-character tokens: `~~` water, `__` land, `|N` an artifact of
// player N, `#N` a town of player N, and `Xn` a tile with letter X
// owned by player n. Tokens may be whitespace-separated (the
// human-readable notation) or packed back to back (the serialized
// form).
package boards

import (
	"fmt"
	"strings"
	"unicode"

	"truncate-engine/internal/game"
)

// Parse builds a board from its text representation.
func Parse(s string) (*game.Board, error) {
	var rows [][]game.Square
	for lineNumber, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens, err := tokenize(line)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", game.ErrMalformedBoard, lineNumber, err)
		}
		row := make([]game.Square, 0, len(tokens))
		for _, token := range tokens {
			sq, err := parseToken(token)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", game.ErrMalformedBoard, lineNumber, err)
			}
			row = append(row, sq)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", game.ErrMalformedBoard)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: ragged rows: row %d has %d cells, expected %d",
				game.ErrMalformedBoard, y, len(row), width)
		}
	}

	board := game.NewBoard(width, len(rows))
	for y, row := range rows {
		for x, sq := range row {
			board.Set(game.Coordinate{X: x, Y: y}, sq)
		}
	}
	board.CacheSpecialSquares()

	for _, p := range []game.PlayerID{0, 1} {
		if n := len(board.ArtifactsOf(p)); n != 1 {
			return nil, fmt.Errorf("%w: player %d has %d artifacts, expected exactly 1",
				game.ErrMalformedBoard, p, n)
		}
	}
	return board, nil
}

// Format renders a board back to the human-readable notation. Format
// and Parse round-trip.
func Format(b *game.Board) string {
	return b.String()
}

// tokenize splits a row into two-character tokens, accepting either
// whitespace-separated or packed cells.
func tokenize(line string) ([]string, error) {
	if strings.ContainsAny(line, " \t") {
		return strings.Fields(line), nil
	}
	if len(line)%2 != 0 {
		return nil, fmt.Errorf("odd-length packed row %q", line)
	}
	tokens := make([]string, 0, len(line)/2)
	for i := 0; i < len(line); i += 2 {
		tokens = append(tokens, line[i:i+2])
	}
	return tokens, nil
}

func parseToken(token string) (game.Square, error) {
	if len(token) != 2 {
		return game.Square{}, fmt.Errorf("bad cell %q", token)
	}
	head, tail := rune(token[0]), rune(token[1])
	switch head {
	case '~':
		if tail != '~' {
			return game.Square{}, fmt.Errorf("bad cell %q", token)
		}
		return game.Water(), nil
	case '_':
		if tail != '_' {
			return game.Square{}, fmt.Errorf("bad cell %q", token)
		}
		return game.Land(), nil
	case '|':
		owner, err := parseOwner(tail)
		if err != nil {
			return game.Square{}, fmt.Errorf("bad cell %q: %v", token, err)
		}
		return game.Artifact(owner), nil
	case '#':
		owner, err := parseOwner(tail)
		if err != nil {
			return game.Square{}, fmt.Errorf("bad cell %q: %v", token, err)
		}
		return game.Town(owner), nil
	default:
		// Case is not semantic; examples use it to hint orientation.
		letter := unicode.ToUpper(head)
		if letter < 'A' || letter > 'Z' {
			return game.Square{}, fmt.Errorf("bad cell %q", token)
		}
		owner, err := parseOwner(tail)
		if err != nil {
			return game.Square{}, fmt.Errorf("bad cell %q: %v", token, err)
		}
		return game.Tile(owner, letter), nil
	}
}

func parseOwner(r rune) (game.PlayerID, error) {
	switch r {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, fmt.Errorf("player must be 0 or 1, got %q", r)
	}
}
