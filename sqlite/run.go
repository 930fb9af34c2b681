package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shodoc/shodoc"
)

// Compile-time interface verification.
var _ shodoc.RunService = (*RunService)(nil)

// RunService implements shodoc.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// RecordRun persists a completed run, assigning its ID.
func (s *RunService) RecordRun(ctx context.Context, run *shodoc.Run) error {
	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, total, readme_count, static_count, catalog_count, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.Format(time.RFC3339), run.FinishedAt.Format(time.RFC3339),
		run.Total, run.ReadmeCount, run.StaticCount, run.CatalogCount, run.Failed)

	return err
}

// FindRuns returns the most recent runs, newest first.
func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*shodoc.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, total, readme_count, static_count, catalog_count, failed
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*shodoc.Run
	for rows.Next() {
		var run shodoc.Run
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Total,
			&run.ReadmeCount, &run.StaticCount, &run.CatalogCount, &run.Failed); err != nil {
			return nil, err
		}

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
