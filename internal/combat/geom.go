package combat

import "fmt"

// Coord is a cell on the board, zero-based. Comparable, so it works as a map key.
type Coord struct{ Row, Col int }

func (a Coord) Add(b Coord) Coord { return Coord{a.Row + b.Row, a.Col + b.Col} }
func (a Coord) String() string    { return fmt.Sprintf("(%d, %d)", a.Row, a.Col) }

// Chebyshev distance; two cells touch (diagonals included) when it is <= 1.
func (a Coord) Chebyshev(b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// around lists the cell itself and its 8 neighbours.
var around = [...]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func inBounds(c Coord, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}
