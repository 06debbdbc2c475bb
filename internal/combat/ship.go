package combat

import "errors"

// ErrShipSunk is returned by RegisterHit once every cell has been hit.
var ErrShipSunk = errors.New("ship already sunk")

type Orientation int

const (
	Horizontal Orientation = iota // cells extend along the row (col+i)
	Vertical                      // cells extend along the column (row+i)
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

type Ship struct {
	Bow         Coord
	Length      int
	Orientation Orientation
	hits        int
}

func NewShip(bow Coord, length int, o Orientation) *Ship {
	return &Ship{Bow: bow, Length: length, Orientation: o}
}

// Cells returns the occupied cells starting at the bow. The result depends only
// on Bow, Length and Orientation.
func (s *Ship) Cells() []Coord {
	step := Coord{0, 1}
	if s.Orientation == Vertical {
		step = Coord{1, 0}
	}
	cells := make([]Coord, s.Length)
	cur := s.Bow
	for i := range cells {
		cells[i] = cur
		cur = cur.Add(step)
	}
	return cells
}

func (s *Ship) IsHitBy(c Coord) bool {
	for _, cell := range s.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (s *Ship) RegisterHit() error {
	if s.Sunk() {
		return ErrShipSunk
	}
	s.hits++
	return nil
}

func (s *Ship) Hits() int  { return s.hits }
func (s *Ship) Sunk() bool { return s.hits >= s.Length }
func (s *Ship) Lives() int { return s.Length - s.hits }
