package game

// truncate removes every occupied square that a flood fill from its
// owner's artifacts can no longer reach. It runs for both players
// after each battle; swaps never truncate because swap validation
// preserves connectivity. The removed coordinates are returned in
// ascending (y, x) order.
func (g *GameState) truncate() []Coordinate {
	var removed []Coordinate
	for _, p := range []PlayerID{0, 1} {
		reached := g.Board.reachableFromArtifacts(p)
		for y, row := range g.Board.Squares {
			for x, sq := range row {
				c := Coordinate{X: x, Y: y}
				if sq.OccupiedBy(p) && !reached[c] {
					removed = append(removed, c)
				}
			}
		}
	}
	SortCoordinates(removed)
	for _, c := range removed {
		g.Board.Set(c, Land())
	}
	return removed
}
