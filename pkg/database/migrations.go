package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// The dashboard searches command detail strings and link titles by free
// text, which the plain b-tree indexes from the Ent schema cannot serve.
// The 'simple' config keeps mixed Korean/English text searchable without
// language stemming.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_command_logs_detail_gin
		ON command_logs USING gin(to_tsvector('simple', COALESCE(detail, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create detail GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_pipeline_links_title_gin
		ON pipeline_links USING gin(to_tsvector('simple', COALESCE(title, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create link title GIN index: %w", err)
	}

	return nil
}
