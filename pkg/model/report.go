// pkg/model/report.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// IngestReport accumulates the counters for a single ingestion run.
type IngestReport struct {
	RunID        string
	RowsFetched  int // rows in the feed snapshot
	RowsEligible int // rows with an approved/live status
	RowsDropped  int // eligible rows excluded for a missing identifier
	RowsWritten  int // records upserted into storage
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

// NewIngestReport initializes a report for a new run.
func NewIngestReport() *IngestReport {
	return &IngestReport{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Complete marks the run as finished and calculates duration.
func (r *IngestReport) Complete() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}
