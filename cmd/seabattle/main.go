// Command seabattle plays sea battle on the console: you against the computer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kopcheni1/BattleShip/internal/combat"
	"github.com/Kopcheni1/BattleShip/internal/config"
	"github.com/Kopcheni1/BattleShip/internal/console"
	"github.com/Kopcheni1/BattleShip/internal/platform/logger"
	"github.com/Kopcheni1/BattleShip/internal/render"
	"github.com/Kopcheni1/BattleShip/internal/util"
)

func main() {
	var cfgPath string
	var seed int64
	var verbose bool
	flag.StringVar(&cfgPath, "config", "", "game config YAML (empty = built-in defaults)")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	flag.BoolVar(&verbose, "v", false, "log match events to stderr")
	flag.Parse()

	log := logger.Default()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("%v", err)
	}
	rng := util.New(util.Seed(seed))
	fleet := cfg.Lengths()

	newBoard := func(owner string) *combat.Board {
		b, restarts, err := combat.RandomBoard(rng, cfg.Board.Size, fleet, cfg.Placement.MaxAttempts, cfg.Placement.MaxRestarts)
		if err != nil {
			log.Fatal("placing fleet for %s: %v", owner, err)
		}
		if restarts > 0 && verbose {
			log.Info("%s fleet placed after %d restarts", owner, restarts)
		}
		return b
	}

	human := &combat.Side{
		Name:  cfg.Players.Human,
		Board: newBoard(cfg.Players.Human),
		Agent: &combat.InteractiveAgent{Source: console.NewPrompter(os.Stdin, os.Stdout)},
	}
	computer := &combat.Side{
		Name:  cfg.Players.Computer,
		Board: newBoard(cfg.Players.Computer),
		Agent: &combat.RandomAgent{Rng: rng},
	}
	computer.Board.SetHidden(true)

	rd := render.NewRenderer(os.Stdout)
	narr := render.NewNarrator(os.Stdout)
	showBoards := func() {
		fmt.Println("--------------------")
		fmt.Printf("%s's board:\n%s\n", human.Name, rd.Board(human.Board))
		fmt.Println("--------------------")
		fmt.Printf("%s's board:\n%s\n", computer.Name, rd.Board(computer.Board))
	}

	m := combat.NewMatch(human, computer, func(ev combat.Event) {
		if ev.Type == combat.EvTurnStart {
			showBoards()
		}
		narr.Handle(ev)
		if verbose {
			log.Event(ev.Type, ev.Side, ev.Payload)
		}
	})
	m.BeforeShot = func(active *combat.Side) {
		if active == computer && cfg.Pacing.AIDelay > 0 {
			time.Sleep(cfg.Pacing.AIDelay)
		}
	}

	narr.Greet()
	if _, err := m.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Println("\nInput closed, leaving the game.")
			return
		}
		log.Fatal("%v", err)
	}
	computer.Board.SetHidden(false)
	showBoards()
}
