package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/fitfusion/pkg/cleanup"
	"github.com/limbo/fitfusion/pkg/errorvalues"
)

// Postgres error codes mapped by repositories
const (
	codeCheckViolation    = "23514"
	codeInvalidText       = "22P02"
	codeNumericOutOfRange = "22003"
)

// NewPool connects to postgres and registers closing of the pool on cleanup
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, errors.New("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// constraintError maps constraint failures to ErrValidation, nil otherwise
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeCheckViolation, codeInvalidText, codeNumericOutOfRange:
			return errors.Join(errorvalues.ErrValidation, errors.New(pgErr.Message))
		}
	}
	return nil
}
