package config

import (
	"errors"
	"fmt"
	"time"
)

type GameConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Fleet     []ShipDef       `yaml:"fleet"`
	Placement PlacementConfig `yaml:"placement"`
	Pacing    PacingConfig    `yaml:"pacing"`
	Players   PlayersConfig   `yaml:"players"`
}

type BoardConfig struct {
	Size int `yaml:"size"`
}

// ShipDef is one manifest line; Count ships of Length are placed in order.
type ShipDef struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
	Count  int    `yaml:"count"`
}

type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	MaxRestarts int `yaml:"max_restarts"`
}

type PacingConfig struct {
	AIDelay time.Duration `yaml:"ai_delay"`
}

type PlayersConfig struct {
	Human    string `yaml:"human"`
	Computer string `yaml:"computer"`
}

func Default() *GameConfig {
	return &GameConfig{
		Board: BoardConfig{Size: 6},
		Fleet: []ShipDef{
			{Name: "cruiser", Length: 3, Count: 1},
			{Name: "destroyer", Length: 2, Count: 2},
			{Name: "boat", Length: 1, Count: 4},
		},
		Placement: PlacementConfig{MaxAttempts: 2000, MaxRestarts: 100},
		Pacing:    PacingConfig{AIDelay: 3 * time.Second},
		Players:   PlayersConfig{Human: "Player", Computer: "Computer"},
	}
}

// Lengths expands the manifest into ship lengths in placement order.
func (c *GameConfig) Lengths() []int {
	var out []int
	for _, sd := range c.Fleet {
		for i := 0; i < sd.Count; i++ {
			out = append(out, sd.Length)
		}
	}
	return out
}

func (c *GameConfig) Validate() error {
	var errs []error
	if c.Board.Size < 1 {
		errs = append(errs, fmt.Errorf("board.size must be positive, got %d", c.Board.Size))
	}
	if len(c.Fleet) == 0 {
		errs = append(errs, errors.New("fleet is empty"))
	}
	for i, sd := range c.Fleet {
		if sd.Length < 1 || sd.Count < 1 {
			errs = append(errs, fmt.Errorf("fleet[%d] %q: length and count must be positive", i, sd.Name))
		}
		if sd.Length > c.Board.Size {
			errs = append(errs, fmt.Errorf("fleet[%d] %q: length %d exceeds board size %d", i, sd.Name, sd.Length, c.Board.Size))
		}
	}
	if c.Placement.MaxAttempts < 1 {
		errs = append(errs, errors.New("placement.max_attempts must be positive"))
	}
	if c.Placement.MaxRestarts < 0 {
		errs = append(errs, errors.New("placement.max_restarts must not be negative"))
	}
	if c.Pacing.AIDelay < 0 {
		errs = append(errs, errors.New("pacing.ai_delay must not be negative"))
	}
	return errors.Join(errs...)
}
