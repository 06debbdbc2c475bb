package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kopcheni1/BattleShip/internal/storage"
)

func TestResultRepository(t *testing.T) {
	ctx := context.Background()
	db, err := storage.InitSQLite(filepath.Join(t.TempDir(), "ledger", "results.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := storage.NewResultRepository(db)
	if err := repo.CreateBatch(ctx, storage.Batch{ID: "b1", Seed: 1, Runs: 3, BoardSize: 6, StartedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	records := []storage.MatchRecord{
		{MatchID: "m1", BatchID: "b1", Seed: 1, Winner: "A", WinnerIndex: 0, Turns: 40, Shots: 40},
		{MatchID: "m2", BatchID: "b1", Seed: 2, Winner: "B", WinnerIndex: 1, Turns: 50, Shots: 50, Rejected: 3},
		{MatchID: "m3", BatchID: "b1", Seed: 3, Winner: "A", WinnerIndex: 0, Turns: 60, Shots: 60, Restarts: 1},
	}
	for _, r := range records {
		if err := repo.Append(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Append(ctx, records[0]); err == nil {
		t.Error("duplicate match id should be rejected")
	}

	got, err := repo.GetByBatch(ctx, "b1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1] != records[1] {
		t.Errorf("GetByBatch = %+v", got)
	}

	s, err := repo.Summarize(ctx, "b1")
	if err != nil {
		t.Fatal(err)
	}
	if s.Runs != 3 || s.AvgTurns != 50 || s.AvgShots != 50 {
		t.Errorf("summary = %+v", s)
	}
	if s.WinsBySide["A"] != 2 || s.WinsBySide["B"] != 1 {
		t.Errorf("wins = %v", s.WinsBySide)
	}

	empty, err := repo.Summarize(ctx, "nope")
	if err != nil || empty.Runs != 0 {
		t.Errorf("empty batch summary = %+v, %v", empty, err)
	}
}
