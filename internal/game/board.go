package game

import "strings"

// Board is the single source of truth for square contents. The
// per-player artifact and town registries are caches refreshed by
// CacheSpecialSquares whenever the fixed terrain is (re)built.
type Board struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Squares [][]Square `json:"squares"` // indexed [y][x]

	artifacts map[PlayerID][]Coordinate
	towns     map[PlayerID][]Coordinate
}

// NewBoard creates a board of empty land. Terrain, artifacts, and
// towns are set with Set before play begins.
func NewBoard(width, height int) *Board {
	squares := make([][]Square, height)
	for y := range squares {
		row := make([]Square, width)
		for x := range row {
			row[x] = Land()
		}
		squares[y] = row
	}
	b := &Board{Width: width, Height: height, Squares: squares}
	b.CacheSpecialSquares()
	return b
}

// InBounds reports whether the coordinate is on the board.
func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// At returns the square at c. Out-of-bounds coordinates read as water,
// which keeps neighbour scans edge-safe.
func (b *Board) At(c Coordinate) Square {
	if !b.InBounds(c) {
		return Water()
	}
	return b.Squares[c.Y][c.X]
}

// Set writes the square at c. Writes outside the board are ignored.
func (b *Board) Set(c Coordinate, s Square) {
	if !b.InBounds(c) {
		return
	}
	b.Squares[c.Y][c.X] = s
}

// Neighbors4 returns the in-bounds orthogonal neighbour coordinates.
func (b *Board) Neighbors4(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, n := range c.Neighbors4() {
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// CacheSpecialSquares rebuilds the artifact and town registries from
// the squares. Artifacts and towns never move during play, so this
// runs at construction and parse time only.
func (b *Board) CacheSpecialSquares() {
	b.artifacts = make(map[PlayerID][]Coordinate)
	b.towns = make(map[PlayerID][]Coordinate)
	for y, row := range b.Squares {
		for x, sq := range row {
			c := Coordinate{X: x, Y: y}
			switch sq.Kind {
			case SquareArtifact:
				b.artifacts[sq.Owner] = append(b.artifacts[sq.Owner], c)
			case SquareTown:
				b.towns[sq.Owner] = append(b.towns[sq.Owner], c)
			}
		}
	}
}

// ArtifactsOf returns the player's artifact coordinates.
func (b *Board) ArtifactsOf(p PlayerID) []Coordinate {
	return b.artifacts[p]
}

// TownsOf returns the player's town coordinates.
func (b *Board) TownsOf(p PlayerID) []Coordinate {
	return b.towns[p]
}

// Clone deep-copies the board.
func (b *Board) Clone() *Board {
	squares := make([][]Square, len(b.Squares))
	for y, row := range b.Squares {
		squares[y] = make([]Square, len(row))
		copy(squares[y], row)
	}
	clone := &Board{Width: b.Width, Height: b.Height, Squares: squares}
	clone.CacheSpecialSquares()
	return clone
}

// String renders the board in the text format, one row per line with
// whitespace-separated two-character tokens.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.Squares {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, sq := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(sq.Token())
		}
	}
	return sb.String()
}

// connectedGroup flood-fills from start through 4-connected squares
// occupied by the same player, returning the visited set. Starting
// from an artifact includes the artifact itself plus the tile group
// rooted at it.
func (b *Board) connectedGroup(start Coordinate) map[Coordinate]bool {
	owner, ok := b.ownerAt(start)
	if !ok {
		return nil
	}
	visited := map[Coordinate]bool{start: true}
	stack := []Coordinate{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range b.Neighbors4(cur) {
			if visited[n] || !b.At(n).OccupiedBy(owner) {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
	return visited
}

func (b *Board) ownerAt(c Coordinate) (PlayerID, bool) {
	sq := b.At(c)
	if sq.Kind == SquareOccupied || sq.Kind == SquareArtifact {
		return sq.Owner, true
	}
	return 0, false
}

// reachableFromArtifacts returns every square of p's that a flood fill
// from p's artifacts can reach, artifacts included.
func (b *Board) reachableFromArtifacts(p PlayerID) map[Coordinate]bool {
	reached := make(map[Coordinate]bool)
	for _, root := range b.ArtifactsOf(p) {
		for c := range b.connectedGroup(root) {
			reached[c] = true
		}
	}
	return reached
}

// PlayablePositions returns the land squares p could legally place on:
// empty land 4-adjacent to p's artifact or to a tile still connected
// to it.
func (b *Board) PlayablePositions(p PlayerID) []Coordinate {
	seen := make(map[Coordinate]bool)
	for c := range b.reachableFromArtifacts(p) {
		for _, n := range b.Neighbors4(c) {
			if b.At(n).Kind == SquareLand {
				seen[n] = true
			}
		}
	}
	out := make([]Coordinate, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	SortCoordinates(out)
	return out
}
