package combat

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/Kopcheni1/BattleShip/internal/config"
)

type Env struct {
	Rng *rand.Rand
}

type SimResult struct {
	Result
	Seed     int64          `json:"seed,omitempty"`
	Restarts int            `json:"placement_restarts"`
	Hits     map[string]int `json:"hits"`
	Sunk     map[string]int `json:"sunk"`
	Events   []Event        `json:"events,omitempty"`
	Meta     SimMeta        `json:"meta"`
}

type SimMeta struct {
	Size  int      `json:"size"`
	Fleet []int    `json:"fleet"`
	Sides []string `json:"sides"`
}

// RunSingle plays computer against computer on freshly randomised boards.
// With record set the full event log is kept in the result.
func RunSingle(env *Env, cfg *config.GameConfig, record bool) (SimResult, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	names := [2]string{cfg.Players.Computer + " A", cfg.Players.Computer + " B"}
	fleet := cfg.Lengths()
	res := SimResult{
		Hits: map[string]int{},
		Sunk: map[string]int{},
		Meta: SimMeta{Size: cfg.Board.Size, Fleet: fleet, Sides: names[:]},
	}

	var sides [2]*Side
	for i := range sides {
		b, restarts, err := RandomBoard(env.Rng, cfg.Board.Size, fleet, cfg.Placement.MaxAttempts, cfg.Placement.MaxRestarts)
		if err != nil {
			return res, fmt.Errorf("board for %s: %w", names[i], err)
		}
		res.Restarts += restarts
		sides[i] = &Side{Name: names[i], Board: b, Agent: &RandomAgent{Rng: env.Rng}}
	}

	emit := func(ev Event) {
		switch ev.Type {
		case EvHit:
			res.Hits[ev.Side]++
		case EvSunk:
			res.Hits[ev.Side]++
			res.Sunk[ev.Side]++
		}
		if record {
			res.Events = append(res.Events, ev)
		}
	}
	m := NewMatch(sides[0], sides[1], emit)
	out, err := m.Run()
	res.Result = out
	return res, err
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
