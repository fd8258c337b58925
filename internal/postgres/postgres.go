// Package postgres opens the shared connection pool and applies the embedded
// schema migrations at startup.
package postgres

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/tilhub/acronyms/internal/postgres/migrations"
)

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "[postgres.Open] open")
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "[postgres.Open] ping")
	}
	return db, nil
}

// RunMigrations applies the embedded goose migrations. The schema is where
// the uniqueness guarantees the services depend on live: users.username,
// tokens.value, reset_tokens.value, categories.name and the pivot pair all
// carry unique indexes.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return errors.Wrap(err, "[postgres.RunMigrations] set dialect")
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "[postgres.RunMigrations] up")
	}
	return nil
}
