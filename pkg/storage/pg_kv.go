package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgConnection interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgKV keeps collections in the kv_store table, see migrations
type PgKV struct {
	conn PgConnection
}

func NewPgKV(conn PgConnection) *PgKV {
	return &PgKV{
		conn: conn,
	}
}

func (p *PgKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	row := p.conn.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1;`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("getting kv value error: %w", err)
	}
	return value, true, nil
}

func (p *PgKV) Set(ctx context.Context, key, value string) error {
	_, err := p.conn.Exec(ctx, `INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`, key, value)
	if err != nil {
		return fmt.Errorf("setting kv value error: %w", err)
	}
	return nil
}
