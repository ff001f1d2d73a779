package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/limbo/fitfusion/pkg/entity"
)

type ActivitiesServiceI interface {
	// Lists all activities, newest first
	List(ctx context.Context) ([]entity.Activity, error)
	// Gets activity by its string id. Malformed id is reported as not found
	Get(ctx context.Context, id string) (*entity.Activity, error)
	// Validates draft and creates activity. Returns stored activity with ID and Date
	Create(ctx context.Context, draft *entity.ActivityDraft) (*entity.Activity, error)
	// Validates draft and replaces fields of activity with id
	Update(ctx context.Context, id string, draft *entity.ActivityDraft) (*entity.Activity, error)
	Delete(ctx context.Context, id string) error
}

type GoalsServiceI interface {
	List(ctx context.Context) ([]entity.Goal, error)
	Get(ctx context.Context, id string) (*entity.Goal, error)
	// Validates draft, targetLeft can't exceed target
	Create(ctx context.Context, draft *entity.GoalDraft) (*entity.Goal, error)
	Update(ctx context.Context, id string, draft *entity.GoalDraft) (*entity.Goal, error)
	Delete(ctx context.Context, id string) error
}
