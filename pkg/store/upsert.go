// pkg/store/upsert.go
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/liza-toph/catalog-ingress/pkg/model"
	"github.com/liza-toph/catalog-ingress/pkg/normalize"
)

// conflictClause overwrites every non-key column on an id collision.
var conflictClause = buildConflictClause()

func buildConflictClause() string {
	assignments := make([]string, 0, len(model.Columns)-1)
	for _, col := range model.Columns {
		if col == "id" {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%q = EXCLUDED.%q", col, col))
	}
	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(assignments, ", ")
}

// Upsert writes the batch in a single transaction: insert new ids, fully
// overwrite existing ones. Records are applied in input order, so duplicate
// ids within one batch resolve to the last row. Returns the written count;
// any failure rolls back the whole batch.
func (s *Store) Upsert(ctx context.Context, products []*model.Product) (int, error) {
	if len(products) == 0 {
		s.logger.Info("No records to upsert")
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %v", ErrUnavailable, err)
	}

	for _, p := range products {
		query, args := s.upsertStatement(p)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("Failed to rollback transaction",
					zap.Error(rbErr),
					zap.String("productID", p.ID))
			}
			return 0, fmt.Errorf("upserting product %s: %w", p.ID, err)
		}
	}

	// Commit failures are left unclassified: the database may have rejected
	// the write itself, which is not the same as being unreachable.
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing batch: %w", err)
	}

	s.logger.Info("Upserted records", zap.Int("count", len(products)))
	return len(products), nil
}

// upsertStatement builds the insert-or-overwrite statement for one record.
func (s *Store) upsertStatement(p *model.Product) (string, []interface{}) {
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("products")
	ib.Cols(quotedColumns...)
	ib.Values(s.columnArgs(p)...)
	ib.SQL(conflictClause)
	return ib.Build()
}

var quotedColumns = quoteColumns(model.Columns)

func quoteColumns(cols []string) []string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return quoted
}

// columnArgs maps a product onto the column order. Blank scalar text becomes
// NULL; absent numerics and booleans are nil pointers; multi-select fields
// become text[] values when the store is configured for arrays.
func (s *Store) columnArgs(p *model.Product) []interface{} {
	args := make([]interface{}, 0, len(model.Columns))
	for _, col := range model.Columns {
		v := p.Field(col)
		switch {
		case model.MultiValueColumns[col]:
			text, _ := v.(string)
			if s.asArrays {
				args = append(args, pq.Array(normalize.SplitMulti(text)))
			} else {
				args = append(args, text)
			}
		case model.FloatColumns[col], model.IntColumns[col], model.BoolColumns[col]:
			args = append(args, v)
		default:
			text, _ := v.(string)
			if text == "" {
				args = append(args, nil)
			} else {
				args = append(args, text)
			}
		}
	}
	return args
}
