// Package replay implements the textual move wire format used by
// replay logs: `P <letter> <x>,<y>` for a placement and
// `S <x1>,<y1> <x2>,<y2>` for a swap. The log does not name the
// mover; turns alternate, so the replayer assigns each entry to the
// player on turn.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"truncate-engine/internal/game"
)

// Entry is one parsed log line, before a player has been assigned.
type Entry struct {
	Kind   game.MoveKind
	Letter rune
	At     game.Coordinate
	A      game.Coordinate
	B      game.Coordinate
}

// ParseMove parses a single log line.
func ParseMove(line string) (Entry, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return Entry{}, fmt.Errorf("%w: empty move", game.ErrMalformedMove)
	}
	switch fields[0] {
	case "P":
		if len(fields) != 3 {
			return Entry{}, fmt.Errorf("%w: expected `P <letter> <x>,<y>`, got %q", game.ErrMalformedMove, line)
		}
		letterField := []rune(fields[1])
		if len(letterField) != 1 {
			return Entry{}, fmt.Errorf("%w: bad letter %q", game.ErrMalformedMove, fields[1])
		}
		letter := unicode.ToUpper(letterField[0])
		if letter < 'A' || letter > 'Z' {
			return Entry{}, fmt.Errorf("%w: bad letter %q", game.ErrMalformedMove, fields[1])
		}
		at, err := parseCoordinate(fields[2])
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: game.MovePlace, Letter: letter, At: at}, nil
	case "S":
		if len(fields) != 3 {
			return Entry{}, fmt.Errorf("%w: expected `S <x1>,<y1> <x2>,<y2>`, got %q", game.ErrMalformedMove, line)
		}
		a, err := parseCoordinate(fields[1])
		if err != nil {
			return Entry{}, err
		}
		b, err := parseCoordinate(fields[2])
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: game.MoveSwap, A: a, B: b}, nil
	default:
		return Entry{}, fmt.Errorf("%w: unknown move %q", game.ErrMalformedMove, fields[0])
	}
}

func parseCoordinate(s string) (game.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return game.Coordinate{}, fmt.Errorf("%w: bad coordinate %q", game.ErrMalformedMove, s)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Coordinate{}, fmt.Errorf("%w: bad coordinate %q", game.ErrMalformedMove, s)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Coordinate{}, fmt.Errorf("%w: bad coordinate %q", game.ErrMalformedMove, s)
	}
	return game.Coordinate{X: x, Y: y}, nil
}

// ParseLog parses a whole move log, one move per line. Blank lines and
// lines starting with '#' are skipped.
func ParseLog(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := ParseMove(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading move log: %w", err)
	}
	return entries, nil
}

// FormatMove renders a move in the wire format.
func FormatMove(m game.Move) string {
	switch m.Kind {
	case game.MovePlace:
		return fmt.Sprintf("P %c %d,%d", m.Letter, m.At.X, m.At.Y)
	case game.MoveSwap:
		return fmt.Sprintf("S %d,%d %d,%d", m.A.X, m.A.Y, m.B.X, m.B.Y)
	default:
		return ""
	}
}

// Run applies a parsed log to a game, assigning each entry to the
// player on turn. It stops at the first error or at game end,
// returning the events produced.
func Run(g *game.GameState, entries []Entry) ([]game.Event, error) {
	var events []game.Event
	for i, entry := range entries {
		var m game.Move
		switch entry.Kind {
		case game.MovePlace:
			m = game.Place(g.Turn, entry.At, entry.Letter)
		case game.MoveSwap:
			m = game.Swap(g.Turn, entry.A, entry.B)
		}
		ev, err := g.Apply(m)
		if err != nil {
			return events, fmt.Errorf("move %d (%s): %w", i+1, FormatMove(m), err)
		}
		events = append(events, *ev)
		if g.IsGameOver() {
			break
		}
	}
	return events, nil
}
