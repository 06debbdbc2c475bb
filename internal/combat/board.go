package combat

type Outcome int

const (
	Miss Outcome = iota
	Hit
	Sunk
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Sunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

type ShotResult struct {
	At      Coord
	Outcome Outcome
	Ship    *Ship // nil on a miss
	// RepeatTurn is set only for a hit that leaves the ship afloat.
	RepeatTurn bool
}

// CellState is what a renderer shows for one cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
	CellCleared // untouched water around a sunk ship
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	case CellCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

type set map[Coord]struct{}

func (s set) has(c Coord) bool {
	_, ok := s[c]
	return ok
}

type Board struct {
	size    int
	hidden  bool
	playing bool
	fleet   []*Ship

	excluded set // occupied + buffer cells, placement only
	fired    set
	cleared  set
	sunk     int
}

func NewBoard(size int) *Board {
	return &Board{
		size:     size,
		excluded: set{},
		fired:    set{},
		cleared:  set{},
	}
}

func (b *Board) Size() int          { return b.size }
func (b *Board) Hidden() bool       { return b.hidden }
func (b *Board) SetHidden(h bool)   { b.hidden = h }
func (b *Board) SunkCount() int     { return b.sunk }
func (b *Board) Afloat() int        { return len(b.fleet) - b.sunk }
func (b *Board) Defeated() bool     { return b.sunk == len(b.fleet) }
func (b *Board) Fired(c Coord) bool { return b.fired.has(c) }

func (b *Board) Fleet() []*Ship {
	out := make([]*Ship, len(b.fleet))
	copy(out, b.fleet)
	return out
}

// PlaceShip adds s when all its cells are on the grid and outside every other
// ship's buffer zone. A rejected ship leaves the board untouched.
func (b *Board) PlaceShip(s *Ship) error {
	if b.playing {
		return ErrPlayStarted
	}
	cells := s.Cells()
	for _, c := range cells {
		if !inBounds(c, b.size) {
			return &ShipPlacementError{Ship: *s, At: c, Reason: "is off the board"}
		}
		if b.excluded.has(c) {
			return &ShipPlacementError{Ship: *s, At: c, Reason: "overlaps or touches another ship"}
		}
	}
	b.markAround(cells, b.excluded)
	b.fleet = append(b.fleet, s)
	return nil
}

// BeginPlay drops placement exclusions and the fired set; from here on only
// previously fired cells reject a shot.
func (b *Board) BeginPlay() {
	b.playing = true
	b.excluded = nil
	b.fired = set{}
}

func (b *Board) Shoot(c Coord) (ShotResult, error) {
	if !inBounds(c, b.size) {
		return ShotResult{}, &OutOfBoundsError{At: c, Size: b.size}
	}
	if b.fired.has(c) {
		return ShotResult{}, &AlreadyFiredError{At: c}
	}
	b.fired[c] = struct{}{}

	for _, s := range b.fleet {
		if !s.IsHitBy(c) {
			continue
		}
		if err := s.RegisterHit(); err != nil {
			// every cell of a sunk ship is already in fired
			return ShotResult{}, err
		}
		if !s.Sunk() {
			return ShotResult{At: c, Outcome: Hit, Ship: s, RepeatTurn: true}, nil
		}
		b.sunk++
		b.markAround(s.Cells(), b.cleared)
		return ShotResult{At: c, Outcome: Sunk, Ship: s}, nil
	}
	return ShotResult{At: c, Outcome: Miss}, nil
}

// Grid is recomputed from the fleet and the fired/cleared sets on every call;
// it is never consulted by shot resolution.
func (b *Board) Grid() [][]CellState {
	grid := make([][]CellState, b.size)
	for r := range grid {
		grid[r] = make([]CellState, b.size)
		for c := range grid[r] {
			if b.cleared.has(Coord{r, c}) {
				grid[r][c] = CellCleared
			}
		}
	}
	for _, s := range b.fleet {
		for _, c := range s.Cells() {
			grid[c.Row][c.Col] = CellShip
		}
	}
	for c := range b.fired {
		if grid[c.Row][c.Col] == CellShip {
			grid[c.Row][c.Col] = CellHit
		} else {
			grid[c.Row][c.Col] = CellMiss
		}
	}
	return grid
}

func (b *Board) markAround(cells []Coord, into set) {
	for _, c := range cells {
		for _, d := range around {
			n := c.Add(d)
			if inBounds(n, b.size) {
				into[n] = struct{}{}
			}
		}
	}
}
