// pkg/pipeline/pipeline.go

// Package pipeline orchestrates a single ingestion run: fetch the feed,
// filter eligible rows, build canonical records, and collect them for the
// upsert writer.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/liza-toph/catalog-ingress/pkg/builder"
	"github.com/liza-toph/catalog-ingress/pkg/feed"
	"github.com/liza-toph/catalog-ingress/pkg/model"
)

// ErrMissingColumns indicates the feed schema itself lacks required columns.
// This is a hard precondition failure, distinct from per-row degradation.
var ErrMissingColumns = errors.New("feed schema missing required columns")

// eligibleStatuses are the raw status values a row must carry to be
// processed, compared case-folded and trimmed.
var eligibleStatuses = map[string]bool{
	"approved": true,
	"live":     true,
}

// Pipeline runs the normalize-validate-build pass over a feed snapshot.
type Pipeline struct {
	source  feed.Source
	builder *builder.Builder
	logger  *zap.Logger
}

// New creates an ingestion pipeline.
func New(source feed.Source, b *builder.Builder, logger *zap.Logger) (*Pipeline, error) {
	if source == nil {
		return nil, errors.New("feed source cannot be nil")
	}
	if b == nil {
		return nil, errors.New("builder cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Pipeline{
		source:  source,
		builder: b,
		logger:  logger.Named("pipeline"),
	}, nil
}

// Run executes one full ingestion pass and returns the collected records
// with the run's counters. A fetch failure or a structurally incomplete
// feed aborts the run; per-row problems never do.
func (p *Pipeline) Run(ctx context.Context) ([]*model.Product, *model.IngestReport, error) {
	report := model.NewIngestReport()

	snapshot, err := p.source.FetchRawRows(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("fetching feed: %w", err)
	}
	report.RowsFetched = len(snapshot.Rows)

	if missing := missingColumns(snapshot); len(missing) > 0 {
		return nil, report, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	products := make([]*model.Product, 0, len(snapshot.Rows))
	for i, row := range snapshot.Rows {
		if !statusEligible(row["status"]) {
			continue
		}
		report.RowsEligible++

		product, ok := p.builder.Build(row)
		if !ok {
			report.RowsDropped++
			p.logger.Warn("Dropping row with missing identifier",
				zap.Int("row", i+1),
				zap.String("name", row["name"]))
			continue
		}
		products = append(products, product)
	}

	// The report stays open: the caller completes it once the write phase
	// has finished, so the final duration covers the whole run.
	p.logger.Info("Ingestion pass collected",
		zap.String("runID", report.RunID),
		zap.Int("fetched", report.RowsFetched),
		zap.Int("eligible", report.RowsEligible),
		zap.Int("dropped", report.RowsDropped),
		zap.Int("collected", len(products)),
		zap.Duration("elapsed", time.Since(report.StartTime)))

	return products, report, nil
}

// statusEligible reports whether a raw status admits the row into the run.
func statusEligible(status string) bool {
	return eligibleStatuses[strings.ToLower(strings.TrimSpace(status))]
}

// missingColumns returns the required columns absent from the feed schema.
func missingColumns(snapshot *model.Feed) []string {
	missing := make([]string, 0)
	for _, col := range model.Columns {
		if !snapshot.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}
