package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(conn PgConnection) *ActivitiesRepository {
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) List(ctx context.Context) ([]entity.Activity, error) {
	activities := make([]entity.Activity, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id::text, type, duration, calories_burned, date FROM activities ORDER BY date DESC;`)
	if err != nil {
		return nil, errors.New("listing activities error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a := entity.Activity{}
		err = rows.Scan(&a.ID, &a.Type, &a.Duration, &a.CaloriesBurned, &a.Date)
		if err != nil {
			return nil, errors.New("unmarshalling activity error: " + err.Error())
		}
		activities = append(activities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return activities, nil
}

func (ar *ActivitiesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity := entity.Activity{ID: id.String()}
	row := ar.conn.QueryRow(ctx, `SELECT type, duration, calories_burned, date FROM activities WHERE id = $1;`, id)
	if err := row.Scan(&activity.Type, &activity.Duration, &activity.CaloriesBurned, &activity.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, errors.New("getting activity by id error: " + err.Error())
	}
	return &activity, nil
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.Activity) error {
	row := ar.conn.QueryRow(ctx, `INSERT INTO activities (type, duration, calories_burned) VALUES ($1, $2, $3) RETURNING id::text, date;`,
		activity.Type,
		activity.Duration,
		activity.CaloriesBurned,
	)
	if err := row.Scan(&activity.ID, &activity.Date); err != nil {
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return errors.New("creating activity db error: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) Update(ctx context.Context, activity *entity.Activity) error {
	row := ar.conn.QueryRow(ctx, `UPDATE activities SET type = $1, duration = $2, calories_burned = $3 WHERE id = $4 RETURNING date;`,
		activity.Type, activity.Duration, activity.CaloriesBurned, activity.ID,
	)
	if err := row.Scan(&activity.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrActivityNotFound
		}
		if cErr := constraintError(err); cErr != nil {
			return cErr
		}
		return errors.New("error updating activity: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM activities WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting activity: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}
