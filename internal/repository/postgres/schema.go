package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the projects table if it does not exist. Used by
// the seed CLI; the server assumes the schema is already in place.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			author_id TEXT NOT NULL,
			author_name TEXT NOT NULL,
			author_image TEXT NOT NULL DEFAULT '',
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			likes JSONB NOT NULL DEFAULT '[]',
			like_count INTEGER NOT NULL DEFAULT 0,
			shares JSONB NOT NULL DEFAULT '[]',
			share_count INTEGER NOT NULL DEFAULT 0,
			comments JSONB NOT NULL DEFAULT '[]',
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMPTZ,
			deleted_by TEXT NOT NULL DEFAULT '',
			restore_available_until TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, tables.Projects)

	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create %s: %w", tables.Projects, err)
	}

	indexes := []string{
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_author ON %s (author_id)`,
			tables.Projects, tables.Projects),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_deleted ON %s (is_deleted, created_at DESC)`,
			tables.Projects, tables.Projects),
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// DropSchema removes the projects table. Seed CLI only; refuses nothing,
// so the caller is responsible for blocking it in production.
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	query := fmt.Sprintf(`DROP TABLE IF EXISTS %s`, tables.Projects)
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("drop %s: %w", tables.Projects, err)
	}
	return nil
}

// ClearData deletes every project row but keeps the schema.
func ClearData(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	query := fmt.Sprintf(`DELETE FROM %s`, tables.Projects)
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("clear %s: %w", tables.Projects, err)
	}
	return nil
}
