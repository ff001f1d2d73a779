package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitfusion/pkg/entity"
)

type ActivitiesRepositoryI interface {
	// Lists all activities, newest first
	List(ctx context.Context) ([]entity.Activity, error)
	// Searches activity with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	// Creates new activity. ID and Date are filled by database and set on activity
	Create(ctx context.Context, activity *entity.Activity) error
	// Updates type, duration and calories of activity by ID. Date is set from database
	Update(ctx context.Context, activity *entity.Activity) error
	// Deletes activity with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Lists all goals, most recently created first
	List(ctx context.Context) ([]entity.Goal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Creates new goal, ID is set on goal
	Create(ctx context.Context, goal *entity.Goal) error
	// Updates goal by ID (ID in goal is necessary)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
