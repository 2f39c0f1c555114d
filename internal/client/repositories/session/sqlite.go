package session

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/JackeyLee233/BlogProject/internal/client/migrations"
)

// InitDatabase opens the session database at dsn and applies the embedded
// migrations. The returned handle is safe to share between the repository
// and the rest of the client.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
