package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// ApplySchema runs the embedded schema against the database. Every statement
// is written to be idempotent, so this is safe to run on each startup.
func (db *PostgresDB) ApplySchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("[DATABASE] Schema applied")
	return nil
}
