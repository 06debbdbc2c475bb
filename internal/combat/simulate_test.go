package combat_test

import (
	"encoding/json"
	"testing"

	"github.com/Kopcheni1/BattleShip/internal/combat"
	"github.com/Kopcheni1/BattleShip/internal/config"
	"github.com/Kopcheni1/BattleShip/internal/util"
)

func TestRunSingle(t *testing.T) {
	cfg := config.Default()
	res, err := combat.RunSingle(&combat.Env{Rng: util.New(42)}, cfg, true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Winner == "" {
		t.Fatal("no winner")
	}
	if got := res.Hits[res.Winner]; got != 9 {
		t.Errorf("winner hits = %d, want 9", got)
	}
	if got := res.Sunk[res.Winner]; got != 7 {
		t.Errorf("winner sinks = %d, want 7", got)
	}
	if len(res.Events) == 0 || res.Events[len(res.Events)-1].Type != combat.EvMatchEnd {
		t.Error("event log should end with MatchEnd")
	}
	if res.Meta.Size != 6 || len(res.Meta.Fleet) != 7 {
		t.Errorf("meta = %+v", res.Meta)
	}

	var decoded map[string]any
	if err := json.Unmarshal(combat.MarshalPretty(res), &decoded); err != nil {
		t.Fatalf("MarshalPretty output is not JSON: %v", err)
	}
	if decoded["winner"] != res.Winner {
		t.Errorf("json winner = %v, want %s", decoded["winner"], res.Winner)
	}
}

func TestRunSingle_Deterministic(t *testing.T) {
	cfg := config.Default()
	first, err := combat.RunSingle(&combat.Env{Rng: util.New(99)}, cfg, false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := combat.RunSingle(&combat.Env{Rng: util.New(99)}, cfg, false)
	if err != nil {
		t.Fatal(err)
	}
	if first.Winner != second.Winner || first.Shots != second.Shots || first.Turns != second.Turns {
		t.Errorf("same seed, different matches: %+v vs %+v", first.Result, second.Result)
	}
	if first.Events != nil {
		t.Error("events recorded without record flag")
	}
}

func TestRunSingle_RepeatShotsShareATurn(t *testing.T) {
	cfg := config.Default()
	for seed := int64(1); seed <= 50; seed++ {
		res, err := combat.RunSingle(&combat.Env{Rng: util.New(seed)}, cfg, false)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		// the winner's non-sinking hits on the 3- and 2-deck ships each keep the turn
		if res.Shots-res.Turns < 4 {
			t.Errorf("seed %d: shots=%d turns=%d, want at least 4 repeat shots", seed, res.Shots, res.Turns)
		}
	}
}
