package store

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/limbo/fitfusion/pkg/entity"
)

// ActivityRemote is the /activities resource, implemented by client.Collection
type ActivityRemote interface {
	// Returns every activity, newest first as the server orders them
	List(ctx context.Context) ([]entity.Activity, error)
	// Creates activity and returns it with the server assigned id and date
	Create(ctx context.Context, draft entity.ActivityDraft) (*entity.Activity, error)
	Update(ctx context.Context, id string, patch entity.ActivityDraft) (*entity.Activity, error)
	Delete(ctx context.Context, id string) error
}

// GoalRemote is the /goals resource, implemented by client.Collection
type GoalRemote interface {
	List(ctx context.Context) ([]entity.Goal, error)
	Create(ctx context.Context, draft entity.GoalDraft) (*entity.Goal, error)
	Update(ctx context.Context, id string, patch entity.GoalDraft) (*entity.Goal, error)
	Delete(ctx context.Context, id string) error
}

// WorkoutPersistence is implemented by storage.Adapter
type WorkoutPersistence interface {
	// Loads never fail, they fall back to defaults
	LoadWorkouts(ctx context.Context) []entity.Workout
	SaveWorkouts(ctx context.Context, workouts []entity.Workout) error
	LoadFavorites(ctx context.Context) []string
	SaveFavorites(ctx context.Context, favorites []string) error
	LoadPersonalBests(ctx context.Context) entity.PersonalBests
	SavePersonalBests(ctx context.Context, bests entity.PersonalBests) error
}

// ChallengePersistence is implemented by storage.Adapter
type ChallengePersistence interface {
	LoadChallenges(ctx context.Context) []entity.Challenge
	SaveChallenges(ctx context.Context, challenges []entity.Challenge) error
}
