package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/cardstudy/schemas"
)

// Migrate creates the tables and indexes used by the study service.
// It is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements, err := schemas.Statements(db.DriverName())
	if err != nil {
		return fmt.Errorf("schemas.Statements() > %w", err)
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("db.ExecContext(migrate) > %w", err)
		}
	}
	return nil
}
