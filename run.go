package shodoc

import (
	"context"
	"time"
)

// Run records the outcome of one pipeline run. Per-tier counts are reported
// separately so catalog-tier fallbacks do not masquerade as README
// successes and upstream fetch degradation stays visible.
type Run struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
	Total        int       `json:"total"`
	ReadmeCount  int       `json:"readmeCount"`
	StaticCount  int       `json:"staticCount"`
	CatalogCount int       `json:"catalogCount"`
	Failed       int       `json:"failed"`
}

// RunService records and lists pipeline run statistics.
type RunService interface {
	// RecordRun persists a completed run. Assigns the ID.
	RecordRun(ctx context.Context, run *Run) error

	// FindRuns returns the most recent runs, newest first.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)
}
