package game

import (
	"fmt"
	"sort"
)

// Coordinate addresses a board square. (0,0) is the top-left corner;
// x grows east and y grows south.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Neighbors4 returns the four orthogonal neighbours in N, E, S, W
// order. Diagonal squares never interact.
func (c Coordinate) Neighbors4() [4]Coordinate {
	return [4]Coordinate{
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
	}
}

// String formats the coordinate in the wire form "x,y".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Less orders coordinates by row first, then column. Truncation and
// doom reports are emitted in this order.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// SortCoordinates sorts a coordinate slice into ascending (y, x) order.
func SortCoordinates(coords []Coordinate) {
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})
}
