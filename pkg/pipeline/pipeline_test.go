package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liza-toph/catalog-ingress/pkg/builder"
	"github.com/liza-toph/catalog-ingress/pkg/feed"
	"github.com/liza-toph/catalog-ingress/pkg/model"
)

type fakeSource struct {
	snapshot *model.Feed
	err      error
}

func (f *fakeSource) FetchRawRows(ctx context.Context) (*model.Feed, error) {
	return f.snapshot, f.err
}

func fullRow(overrides map[string]string) model.RawRow {
	row := make(model.RawRow, len(model.Columns))
	for _, col := range model.Columns {
		row[col] = ""
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func newPipeline(t *testing.T, src feed.Source) *Pipeline {
	t.Helper()
	p, err := New(src, builder.New(false), zap.NewNop())
	require.NoError(t, err)
	return p
}

func TestRun_EligibilityFilter(t *testing.T) {
	src := &fakeSource{snapshot: &model.Feed{
		Columns: model.Columns,
		Rows: []model.RawRow{
			fullRow(map[string]string{"id": "a", "status": "approved"}),
			fullRow(map[string]string{"id": "b", "status": " LIVE "}),
			fullRow(map[string]string{"id": "c", "status": "draft"}),
			fullRow(map[string]string{"id": "d", "status": "rejected"}),
			fullRow(map[string]string{"id": "e", "status": ""}),
		},
	}}

	products, report, err := newPipeline(t, src).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
	assert.Equal(t, 5, report.RowsFetched)
	assert.Equal(t, 2, report.RowsEligible)
	assert.Equal(t, 0, report.RowsDropped)
}

func TestRun_MissingColumnsIsHardFailure(t *testing.T) {
	cols := make([]string, 0, len(model.Columns))
	for _, c := range model.Columns {
		if c == "price" || c == "status" {
			continue
		}
		cols = append(cols, c)
	}

	src := &fakeSource{snapshot: &model.Feed{
		Columns: cols,
		Rows:    []model.RawRow{fullRow(map[string]string{"id": "a", "status": "approved"})},
	}}

	_, _, err := newPipeline(t, src).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "status")
}

func TestRun_MissingIdentifierIsDroppedNotFatal(t *testing.T) {
	src := &fakeSource{snapshot: &model.Feed{
		Columns: model.Columns,
		Rows: []model.RawRow{
			fullRow(map[string]string{"id": "a", "status": "approved"}),
			fullRow(map[string]string{"id": "", "status": "approved", "name": "orphan"}),
			fullRow(map[string]string{"id": "b", "status": "live"}),
		},
	}}

	products, report, err := newPipeline(t, src).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, products, 2)
	assert.Equal(t, 3, report.RowsEligible)
	assert.Equal(t, 1, report.RowsDropped)
}

func TestRun_FetchFailureAborts(t *testing.T) {
	src := &fakeSource{err: feed.ErrUnavailable}

	_, _, err := newPipeline(t, src).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrUnavailable)
}

func TestRun_EmptyFeed(t *testing.T) {
	src := &fakeSource{snapshot: &model.Feed{Columns: model.Columns}}

	products, report, err := newPipeline(t, src).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, 0, report.RowsFetched)
}

func TestRun_ReportCompletedByCaller(t *testing.T) {
	src := &fakeSource{snapshot: &model.Feed{
		Columns: model.Columns,
		Rows: []model.RawRow{
			fullRow(map[string]string{"id": "a", "status": "approved"}),
		},
	}}

	_, report, err := newPipeline(t, src).Run(context.Background())
	require.NoError(t, err)

	// The collection pass leaves the report open so the final duration can
	// cover the write phase too.
	assert.True(t, report.EndTime.IsZero())
	assert.Zero(t, report.Duration)

	report.Complete()
	assert.False(t, report.EndTime.IsZero())
	assert.GreaterOrEqual(t, report.Duration, time.Duration(0))
}

func TestRun_Deterministic(t *testing.T) {
	snapshot := &model.Feed{
		Columns: model.Columns,
		Rows: []model.RawRow{
			fullRow(map[string]string{"id": "a", "status": "approved", "price": "$10"}),
			fullRow(map[string]string{"id": "b", "status": "live", "price": "$20"}),
		},
	}

	first, _, err := newPipeline(t, &fakeSource{snapshot: snapshot}).Run(context.Background())
	require.NoError(t, err)
	second, _, err := newPipeline(t, &fakeSource{snapshot: snapshot}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
