package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/metrics"
	"github.com/limbo/fitfusion/pkg/validation"
)

type WorkoutSnapshot struct {
	State         State
	Workouts      []entity.Workout
	Favorites     []string
	PersonalBests entity.PersonalBests
	Weekly        metrics.WorkoutSummary
}

// WorkoutStore keeps the workout log, favorite workout types and personal bests in local storage.
// Workouts are ordered newest first and addressed by position.
type WorkoutStore struct {
	core[WorkoutSnapshot]

	persistence WorkoutPersistence
	now         func() time.Time

	workouts  []entity.Workout
	favorites []string
	bests     entity.PersonalBests
}

// NewWorkoutStore loads all three collections from persistence
func NewWorkoutStore(ctx context.Context, persistence WorkoutPersistence, opts ...Option) *WorkoutStore {
	o := buildOptions(opts)
	s := &WorkoutStore{
		persistence: persistence,
		now:         o.now,
		workouts:    persistence.LoadWorkouts(ctx),
		favorites:   persistence.LoadFavorites(ctx),
		bests:       persistence.LoadPersonalBests(ctx).Clone(),
	}
	if s.workouts == nil {
		s.workouts = []entity.Workout{}
	}
	if s.favorites == nil {
		s.favorites = []string{}
	}
	s.initCore(o.logger, "workouts")
	return s
}

// Log prepends a workout dated now and raises the personal best of its category
func (s *WorkoutStore) Log(ctx context.Context, draft entity.WorkoutDraft) (entity.Workout, error) {
	if err := validation.Struct(draft); err != nil {
		return entity.Workout{}, err
	}
	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return entity.Workout{}, err
	}
	defer release()
	ctx = context.WithoutCancel(ctx)

	workout := entity.Workout{
		Type:     strings.TrimSpace(draft.Type),
		Duration: draft.Duration,
		Category: draft.Category,
		Date:     s.now(),
	}
	s.mu.RLock()
	prevWorkouts := s.workouts
	workouts := append([]entity.Workout{workout}, s.workouts...)
	bests := metrics.UpdatePersonalBest(s.bests, draft.Category, draft.Duration)
	s.mu.RUnlock()

	if err := s.persistence.SaveWorkouts(ctx, workouts); err != nil {
		return entity.Workout{}, s.fail("log workout", err)
	}
	if err := s.persistence.SavePersonalBests(ctx, bests); err != nil {
		s.restoreWorkouts(ctx, prevWorkouts)
		return entity.Workout{}, s.fail("log workout", err)
	}
	s.commit(func() {
		s.workouts = workouts
		s.bests = bests
	})
	return workout, nil
}

// ToggleComplete flips the completed flag of the workout at index
func (s *WorkoutStore) ToggleComplete(ctx context.Context, index int) error {
	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return err
	}
	defer release()
	ctx = context.WithoutCancel(ctx)

	s.mu.RLock()
	if index < 0 || index >= len(s.workouts) {
		s.mu.RUnlock()
		return s.fail("toggle workout", fmt.Errorf("%w: index %d", errorvalues.ErrWorkoutNotFound, index))
	}
	workouts := slices.Clone(s.workouts)
	s.mu.RUnlock()
	workouts[index].Completed = !workouts[index].Completed

	if err := s.persistence.SaveWorkouts(ctx, workouts); err != nil {
		return s.fail("toggle workout", err)
	}
	s.commit(func() { s.workouts = workouts })
	return nil
}

// Remove deletes the workout at index. Personal bests are kept
func (s *WorkoutStore) Remove(ctx context.Context, index int, confirm Confirm) (bool, error) {
	if confirm == nil || !confirm() {
		return false, nil
	}
	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return false, err
	}
	defer release()
	ctx = context.WithoutCancel(ctx)

	s.mu.RLock()
	if index < 0 || index >= len(s.workouts) {
		s.mu.RUnlock()
		return false, s.fail("remove workout", fmt.Errorf("%w: index %d", errorvalues.ErrWorkoutNotFound, index))
	}
	workouts := slices.Delete(slices.Clone(s.workouts), index, index+1)
	s.mu.RUnlock()

	if err := s.persistence.SaveWorkouts(ctx, workouts); err != nil {
		return false, s.fail("remove workout", err)
	}
	s.commit(func() { s.workouts = workouts })
	return true, nil
}

// AddFavorite is idempotent, a type already present is not saved again
func (s *WorkoutStore) AddFavorite(ctx context.Context, workoutType string) error {
	workoutType = strings.TrimSpace(workoutType)
	if workoutType == "" {
		return fmt.Errorf("%w: workout type is required", errorvalues.ErrValidation)
	}
	return s.changeFavorites(ctx, "add favorite", func(favorites []string) ([]string, bool) {
		if slices.Contains(favorites, workoutType) {
			return favorites, false
		}
		return append(slices.Clone(favorites), workoutType), true
	})
}

func (s *WorkoutStore) RemoveFavorite(ctx context.Context, workoutType string) error {
	workoutType = strings.TrimSpace(workoutType)
	return s.changeFavorites(ctx, "remove favorite", func(favorites []string) ([]string, bool) {
		idx := slices.Index(favorites, workoutType)
		if idx < 0 {
			return favorites, false
		}
		return slices.Delete(slices.Clone(favorites), idx, idx+1), true
	})
}

func (s *WorkoutStore) changeFavorites(ctx context.Context, op string, change func([]string) ([]string, bool)) error {
	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return err
	}
	defer release()
	ctx = context.WithoutCancel(ctx)

	s.mu.RLock()
	favorites, changed := change(s.favorites)
	s.mu.RUnlock()
	if !changed {
		s.commit(func() {})
		return nil
	}
	if err := s.persistence.SaveFavorites(ctx, favorites); err != nil {
		return s.fail(op, err)
	}
	s.commit(func() { s.favorites = favorites })
	return nil
}

func (s *WorkoutStore) Workouts() []entity.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.workouts)
}

func (s *WorkoutStore) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

func (s *WorkoutStore) PersonalBests() entity.PersonalBests {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bests.Clone()
}

func (s *WorkoutStore) WeeklySummary() metrics.WorkoutSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return metrics.WeeklySummary(s.workouts)
}

// commit applies a persisted change in memory and publishes it
func (s *WorkoutStore) commit(apply func()) {
	s.mu.Lock()
	apply()
	s.state = Idle
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.subs.publish(snapshot)
}

func (s *WorkoutStore) snapshotLocked() WorkoutSnapshot {
	return WorkoutSnapshot{
		State:         s.state,
		Workouts:      slices.Clone(s.workouts),
		Favorites:     slices.Clone(s.favorites),
		PersonalBests: s.bests.Clone(),
		Weekly:        metrics.WeeklySummary(s.workouts),
	}
}

// restoreWorkouts puts back what was stored before a half persisted change
func (s *WorkoutStore) restoreWorkouts(ctx context.Context, workouts []entity.Workout) {
	if err := s.persistence.SaveWorkouts(ctx, workouts); err != nil {
		s.logger.Error("restoring workouts error", slog.String("error", err.Error()))
	}
}
