package combat

import "math/rand"

// Target is the part of the opposing board an agent may look at.
type Target interface {
	Size() int
	Fired(c Coord) bool
}

type Agent interface {
	ChooseTarget(t Target) (Coord, error)
}

type AgentFunc func(t Target) (Coord, error)

func (f AgentFunc) ChooseTarget(t Target) (Coord, error) { return f(t) }

// RandomAgent picks uniformly over the grid and keeps no memory: it may pick
// a fired cell again, the match retries until the board accepts a shot.
type RandomAgent struct {
	Rng *rand.Rand
}

func (a *RandomAgent) ChooseTarget(t Target) (Coord, error) {
	n := t.Size()
	return Coord{a.Rng.Intn(n), a.Rng.Intn(n)}, nil
}

// TargetSource supplies already parsed coordinates, e.g. from a console prompt.
type TargetSource interface {
	NextTarget() (Coord, error)
}

type InteractiveAgent struct {
	Source TargetSource
}

func (a *InteractiveAgent) ChooseTarget(Target) (Coord, error) { return a.Source.NextTarget() }
