package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Kopcheni1/BattleShip/internal/combat"
	"github.com/Kopcheni1/BattleShip/internal/config"
	"github.com/Kopcheni1/BattleShip/internal/platform/logger"
	"github.com/Kopcheni1/BattleShip/internal/storage"
	"github.com/Kopcheni1/BattleShip/internal/util"
)

type options struct {
	cfgPath, out, dbPath string
	seed                 int64
	n, workers           int
	saveLog              bool
}

func main() {
	var o options
	flag.StringVar(&o.cfgPath, "config", "", "game config YAML (empty = built-in defaults)")
	flag.StringVar(&o.out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&o.dbPath, "db", "", "sqlite ledger for batch results (empty = off)")
	flag.Int64Var(&o.seed, "seed", 12345, "seed (0 = clock)")
	flag.IntVar(&o.n, "n", 1, "number of simulations")
	flag.IntVar(&o.workers, "workers", 8, "parallel simulations in batch mode")
	flag.BoolVar(&o.saveLog, "log", true, "save full event log when n==1")
	flag.Parse()

	log := logger.Default()
	if err := run(context.Background(), log, o); err != nil {
		log.Fatal("%v", err)
	}
}

func run(ctx context.Context, log *logger.Logger, o options) error {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return err
	}
	o.seed = util.Seed(o.seed)
	if o.n <= 1 {
		return runOne(cfg, o)
	}
	return runBatch(ctx, log, cfg, o)
}

func runOne(cfg *config.GameConfig, o options) error {
	res, err := combat.RunSingle(&combat.Env{Rng: util.New(o.seed)}, cfg, o.saveLog)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	res.Seed = o.seed
	if err := os.WriteFile(o.out, combat.MarshalPretty(res), 0644); err != nil {
		return fmt.Errorf("write %s: %w", o.out, err)
	}
	fmt.Printf("Single simsvc finished. Winner=%s, turns=%d, shots=%d -> %s\n", res.Winner, res.Turns, res.Shots, o.out)
	return nil
}

func runBatch(ctx context.Context, log *logger.Logger, cfg *config.GameConfig, o options) error {
	batchID := uuid.NewString()
	var repo *storage.ResultRepository
	if o.dbPath != "" {
		db, err := storage.InitSQLite(o.dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		repo = storage.NewResultRepository(db)
		if err := repo.CreateBatch(ctx, storage.Batch{
			ID: batchID, Seed: o.seed, Runs: o.n, BoardSize: cfg.Board.Size, StartedAt: time.Now(),
		}); err != nil {
			return err
		}
		log.Info("recording batch %s in %s", batchID, o.dbPath)
	}

	type stat struct {
		Wins     map[string]int
		SumTurns int
		SumShots int
		Rejected int
		Restarts int
	}
	st := stat{Wins: map[string]int{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < o.n; i++ {
		g.Go(func() error {
			jobSeed := util.Derive(o.seed, i)
			res, err := combat.RunSingle(&combat.Env{Rng: util.New(jobSeed)}, cfg, false)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}

			mu.Lock()
			st.Wins[res.Winner]++
			st.SumTurns += res.Turns
			st.SumShots += res.Shots
			st.Rejected += res.Rejected
			st.Restarts += res.Restarts
			mu.Unlock()

			if repo == nil {
				return nil
			}
			return repo.Append(gctx, storage.MatchRecord{
				MatchID: res.MatchID, BatchID: batchID, Seed: jobSeed,
				Winner: res.Winner, WinnerIndex: res.WinnerIx,
				Turns: res.Turns, Shots: res.Shots, Rejected: res.Rejected, Restarts: res.Restarts,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	n := float64(o.n)
	winRate := map[string]any{}
	for side, w := range st.Wins {
		winRate[side] = float64(w) / n
	}
	summary := map[string]any{
		"batch_id":           batchID,
		"seed":               o.seed,
		"runs":               o.n,
		"win_rate":           winRate,
		"avg_turns":          float64(st.SumTurns) / n,
		"avg_shots":          float64(st.SumShots) / n,
		"avg_rejected":       float64(st.Rejected) / n,
		"placement_restarts": st.Restarts,
	}
	if repo != nil {
		ledger, err := ledgerSummary(ctx, repo, batchID)
		if err != nil {
			log.Warn("ledger summary: %v", err)
		} else {
			summary["ledger"] = ledger
		}
	}
	if err := os.WriteFile(o.out, combat.MarshalPretty(summary), 0644); err != nil {
		return fmt.Errorf("write %s: %w", o.out, err)
	}
	fmt.Printf("Batch of %s done -> %s\n", humanize.Comma(int64(o.n)), filepath.Base(o.out))
	return nil
}

// ledgerSummary reads the batch back from the database, so the report
// reflects what was actually recorded.
func ledgerSummary(ctx context.Context, repo *storage.ResultRepository, batchID string) (map[string]any, error) {
	s, err := repo.Summarize(ctx, batchID)
	if err != nil {
		return nil, err
	}
	records, err := repo.GetByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"runs":      s.Runs,
		"wins":      s.WinsBySide,
		"avg_turns": s.AvgTurns,
		"avg_shots": s.AvgShots,
		"matches":   records,
	}, nil
}
