package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Batch struct {
	ID        string
	Seed      int64
	Runs      int
	BoardSize int
	StartedAt time.Time
}

type MatchRecord struct {
	MatchID     string `json:"match_id"`
	BatchID     string `json:"batch_id"`
	Seed        int64  `json:"seed"`
	Winner      string `json:"winner"`
	WinnerIndex int    `json:"winner_index"`
	Turns       int    `json:"turns"`
	Shots       int    `json:"shots"`
	Rejected    int    `json:"rejected"`
	Restarts    int    `json:"restarts"`
}

// Summary aggregates one batch.
type Summary struct {
	Runs       int
	WinsBySide map[string]int
	AvgTurns   float64
	AvgShots   float64
}

type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) CreateBatch(ctx context.Context, b Batch) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO batches (batch_id, seed, runs, board_size, started_at) VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Seed, b.Runs, b.BoardSize, b.StartedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create batch: %w", err)
	}
	return nil
}

func (r *ResultRepository) Append(ctx context.Context, m MatchRecord) error {
	query := `
		INSERT INTO matches (match_id, batch_id, seed, winner, winner_index, turns, shots, rejected, restarts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		m.MatchID, m.BatchID, m.Seed, m.Winner, m.WinnerIndex, m.Turns, m.Shots, m.Rejected, m.Restarts,
	)
	if err != nil {
		return fmt.Errorf("failed to append match: %w", err)
	}
	return nil
}

func (r *ResultRepository) GetByBatch(ctx context.Context, batchID string) ([]MatchRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT match_id, batch_id, seed, winner, winner_index, turns, shots, rejected, restarts
		 FROM matches WHERE batch_id = ? ORDER BY seed ASC`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchRecord
	for rows.Next() {
		var m MatchRecord
		if err := rows.Scan(&m.MatchID, &m.BatchID, &m.Seed, &m.Winner, &m.WinnerIndex,
			&m.Turns, &m.Shots, &m.Rejected, &m.Restarts); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ResultRepository) Summarize(ctx context.Context, batchID string) (Summary, error) {
	s := Summary{WinsBySide: map[string]int{}}
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(turns), 0), COALESCE(AVG(shots), 0) FROM matches WHERE batch_id = ?`, batchID)
	if err := row.Scan(&s.Runs, &s.AvgTurns, &s.AvgShots); err != nil {
		return s, fmt.Errorf("failed to summarize batch: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT winner, COUNT(*) FROM matches WHERE batch_id = ? GROUP BY winner`, batchID)
	if err != nil {
		return s, fmt.Errorf("failed to summarize batch: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var side string
		var n int
		if err := rows.Scan(&side, &n); err != nil {
			return s, err
		}
		s.WinsBySide[side] = n
	}
	return s, rows.Err()
}
