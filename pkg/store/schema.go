// pkg/store/schema.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/liza-toph/catalog-ingress/pkg/model"
)

// EnsureSchema creates the products table, adds any columns it is missing,
// and guarantees the unique index on id. Safe to run before every import.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schemaCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	statements := []string{
		"CREATE TABLE IF NOT EXISTS products (id text PRIMARY KEY)",
	}
	for _, col := range model.Columns {
		if col == "id" {
			continue
		}
		statements = append(statements, fmt.Sprintf(
			"ALTER TABLE products ADD COLUMN IF NOT EXISTS %q %s", col, s.columnType(col)))
	}
	statements = append(statements,
		"CREATE UNIQUE INDEX IF NOT EXISTS products_id_key ON products (id)")

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(schemaCtx, stmt); err != nil {
			return fmt.Errorf("%w: ensuring schema: %v", ErrUnavailable, err)
		}
	}

	s.logger.Info("Ensured products table exists")
	return nil
}

// columnType maps a column name to its Postgres type. Multi-select columns
// follow the array configuration; everything else is scalar.
func (s *Store) columnType(col string) string {
	switch {
	case model.MultiValueColumns[col]:
		if s.asArrays {
			return "text[]"
		}
		return "text"
	case model.FloatColumns[col]:
		return "numeric"
	case model.IntColumns[col]:
		return "integer"
	case model.BoolColumns[col]:
		return "boolean"
	default:
		return "text"
	}
}
