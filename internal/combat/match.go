package combat

import (
	"fmt"

	"github.com/google/uuid"
)

type Stage int

const (
	StageSetup Stage = iota
	StageInProgress
	StageFinished
)

func (s Stage) String() string {
	switch s {
	case StageSetup:
		return "Setup"
	case StageInProgress:
		return "InProgress"
	case StageFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Side is one player: the board it defends and the agent that fires for it.
type Side struct {
	Name  string
	Board *Board
	Agent Agent
}

type Result struct {
	MatchID  string `json:"match_id"`
	Winner   string `json:"winner"`
	WinnerIx int    `json:"winner_index"`
	Turns    int    `json:"turns"`
	Shots    int    `json:"shots"`
	Rejected int    `json:"rejected"`
}

type Match struct {
	ID    string
	Sides [2]*Side
	Emit  func(Event)

	// BeforeShot runs once per accepted shot, before the active agent picks a
	// target. Rejected picks do not call it again.
	BeforeShot func(active *Side)

	stage    Stage
	turn     int // parity selects the shooter
	newTurn  bool
	turns    int // shooter changes, plus the opening turn
	shots    int
	rejected int
	winner   int
}

func NewMatch(first, second *Side, emit func(Event)) *Match {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Match{
		ID:      uuid.NewString(),
		Sides:   [2]*Side{first, second},
		Emit:    emit,
		newTurn: true,
		winner:  -1,
	}
}

func (m *Match) Stage() Stage  { return m.stage }
func (m *Match) Active() *Side { return m.Sides[m.turn%2] }

// Winner is nil until the match is finished.
func (m *Match) Winner() *Side {
	if m.winner < 0 {
		return nil
	}
	return m.Sides[m.winner]
}

// Start moves the match from Setup to InProgress once both sides have a fleet.
func (m *Match) Start() error {
	if m.stage != StageSetup {
		return nil
	}
	for i, s := range m.Sides {
		if s == nil || s.Board == nil || s.Agent == nil {
			return fmt.Errorf("side %d is incomplete", i)
		}
		if len(s.Board.fleet) == 0 {
			return fmt.Errorf("side %q: %w", s.Name, ErrNoFleet)
		}
	}
	if m.Sides[0].Board == m.Sides[1].Board {
		return ErrSharedBoard
	}
	m.stage = StageInProgress
	m.Emit(Event{Type: EvMatchStart, Payload: map[string]any{
		"id": m.ID, "sides": []string{m.Sides[0].Name, m.Sides[1].Name},
		"size": m.Sides[0].Board.Size(),
	}})
	return nil
}

// Step resolves exactly one accepted shot for the active side. Board errors
// are reported and the same agent picks again; any other error is returned.
func (m *Match) Step() (ShotResult, error) {
	switch m.stage {
	case StageFinished:
		return ShotResult{}, ErrMatchFinished
	case StageSetup:
		if err := m.Start(); err != nil {
			return ShotResult{}, err
		}
	}
	shooter := m.turn % 2
	self, enemy := m.Sides[shooter], m.Sides[1-shooter]
	if m.newTurn {
		m.turns++
		m.newTurn = false
	}
	volley := m.shots + 1
	m.Emit(Event{Turn: m.turns, Shot: volley, Side: self.Name, Type: EvTurnStart})
	if m.BeforeShot != nil {
		m.BeforeShot(self)
	}

	var res ShotResult
	for {
		at, err := self.Agent.ChooseTarget(enemy.Board)
		if err != nil {
			return ShotResult{}, fmt.Errorf("%s: choose target: %w", self.Name, err)
		}
		res, err = enemy.Board.Shoot(at)
		if err == nil {
			break
		}
		if !IsBoardError(err) {
			return ShotResult{}, err
		}
		m.rejected++
		m.Emit(Event{Turn: m.turns, Shot: volley, Side: self.Name, Type: EvShotRejected, Payload: map[string]any{
			"row": at.Row, "col": at.Col, "size": enemy.Board.Size(),
			"reason": rejectReason(err), "error": err.Error(),
		}})
	}
	m.shots++

	payload := map[string]any{"row": res.At.Row, "col": res.At.Col}
	if res.Ship != nil {
		payload["length"] = res.Ship.Length
		payload["afloat"] = enemy.Board.Afloat()
	}
	m.Emit(Event{Turn: m.turns, Shot: volley, Side: self.Name, Type: outcomeEvent(res.Outcome), Payload: payload})

	// the shooter's target board is checked first
	switch {
	case enemy.Board.Defeated():
		m.finish(shooter)
	case self.Board.Defeated():
		m.finish(1 - shooter)
	}
	if !res.RepeatTurn {
		m.turn++
		m.newTurn = true
	}
	return res, nil
}

// Run plays until one fleet is destroyed.
func (m *Match) Run() (Result, error) {
	for m.stage != StageFinished {
		if _, err := m.Step(); err != nil {
			return m.Result(), err
		}
	}
	return m.Result(), nil
}

func (m *Match) Result() Result {
	r := Result{MatchID: m.ID, WinnerIx: m.winner, Turns: m.turns, Shots: m.shots, Rejected: m.rejected}
	if w := m.Winner(); w != nil {
		r.Winner = w.Name
	}
	return r
}

func (m *Match) finish(winner int) {
	m.stage = StageFinished
	m.winner = winner
	m.Emit(Event{Turn: m.turns, Shot: m.shots, Side: m.Sides[winner].Name, Type: EvMatchEnd, Payload: map[string]any{
		"winner": m.Sides[winner].Name, "turns": m.turns, "shots": m.shots,
	}})
}
