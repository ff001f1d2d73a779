package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(conn PgConnection) *GoalsRepository {
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) List(ctx context.Context) ([]entity.Goal, error) {
	goals := make([]entity.Goal, 0)
	rows, err := gr.conn.Query(ctx, `SELECT id::text, type, target, target_left FROM goals ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		g := entity.Goal{}
		err = rows.Scan(&g.ID, &g.Type, &g.Target, &g.TargetLeft)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		g.Completed = g.IsCompleted()
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal := entity.Goal{ID: id.String()}
	row := gr.conn.QueryRow(ctx, `SELECT type, target, target_left FROM goals WHERE id = $1;`, id)
	if err := row.Scan(&goal.Type, &goal.Target, &goal.TargetLeft); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	goal.Completed = goal.IsCompleted()
	return &goal, nil
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (type, target, target_left) VALUES ($1, $2, $3) RETURNING id::text;`,
		goal.Type,
		goal.Target,
		goal.TargetLeft,
	)
	if err := row.Scan(&goal.ID); err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return errors.New("creating goal db error: " + err.Error())
	}
	goal.Completed = goal.IsCompleted()
	return nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET type = $1, target = $2, target_left = $3, updated_at = NOW() WHERE id = $4;`,
		goal.Type, goal.Target, goal.TargetLeft, goal.ID,
	)
	if err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return errors.New("error updating goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	goal.Completed = goal.IsCompleted()
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting goal: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}
