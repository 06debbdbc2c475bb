package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Kopcheni1/BattleShip/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	want := []int{3, 2, 2, 1, 1, 1, 1}
	if got := cfg.Lengths(); !reflect.DeepEqual(got, want) {
		t.Errorf("lengths = %v, want %v", got, want)
	}
}

func TestParse_Overrides(t *testing.T) {
	doc := []byte(`
board:
  size: 8
fleet:
  - {name: battleship, length: 4, count: 1}
  - {name: boat, length: 1, count: 2}
pacing:
  ai_delay: 250ms
`)
	cfg, err := config.Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("size = %d, want 8", cfg.Board.Size)
	}
	if got := cfg.Lengths(); !reflect.DeepEqual(got, []int{4, 1, 1}) {
		t.Errorf("lengths = %v", got)
	}
	if cfg.Pacing.AIDelay != 250*time.Millisecond {
		t.Errorf("ai_delay = %v", cfg.Pacing.AIDelay)
	}
	// untouched sections keep their defaults
	if cfg.Placement.MaxAttempts != 2000 || cfg.Players.Computer != "Computer" {
		t.Errorf("defaults lost: %+v %+v", cfg.Placement, cfg.Players)
	}
}

func TestParse_Invalid(t *testing.T) {
	docs := map[string]string{
		"zero size":      "board: {size: 0}",
		"ship too long":  "fleet: [{name: x, length: 7, count: 1}]",
		"zero count":     "fleet: [{name: x, length: 1, count: 0}]",
		"no attempts":    "placement: {max_attempts: 0}",
		"negative delay": "pacing: {ai_delay: -1s}",
		"malformed yaml": "board: [",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Parse([]byte(doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil || cfg.Board.Size != 6 {
		t.Fatalf("Load(\"\") = %+v, %v", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("board: {size: 7}\nplayers: {human: Ann}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Size != 7 || cfg.Players.Human != "Ann" {
		t.Errorf("loaded %+v", cfg)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoad_ShippedAssets(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "assets", "game.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Errorf("assets/game.yaml drifted from Default(): %+v", cfg)
	}
}
