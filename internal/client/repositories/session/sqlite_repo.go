package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JackeyLee233/BlogProject/internal/dbx"
)

// SQLiteRepository stores the session in a two-column key-value table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	v, err := r.get(ctx, r.db, KeyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (r *SQLiteRepository) UserInfo(ctx context.Context) ([]byte, error) {
	return r.get(ctx, r.db, KeyUserInfo)
}

func (r *SQLiteRepository) SaveSession(ctx context.Context, token string, userInfo []byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return r.set(ctx, tx, KeyUserInfo, userInfo)
	})
}

func (r *SQLiteRepository) SaveUserInfo(ctx context.Context, userInfo []byte) error {
	return r.set(ctx, r.db, KeyUserInfo, userInfo)
}

func (r *SQLiteRepository) EraseSession(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.delete(ctx, tx, KeyToken); err != nil {
			return err
		}
		return r.delete(ctx, tx, KeyUserInfo)
	})
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) delete(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}
