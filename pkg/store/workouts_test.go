package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/metrics"
	"github.com/limbo/fitfusion/pkg/storage"
	"github.com/limbo/fitfusion/pkg/store"
	"github.com/limbo/fitfusion/pkg/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workoutClock = func() time.Time { return time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC) }

func TestWorkoutLogAndPersonalBest(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewAdapter(storage.NewMemoryKV(), nil)
	s := store.NewWorkoutStore(ctx, adapter, store.WithClock(workoutClock))

	for _, duration := range []int{10, 20, 15} {
		w, err := s.Log(ctx, entity.WorkoutDraft{Type: "Cycling", Duration: duration, Category: entity.CategoryCardio})
		require.NoError(t, err)
		assert.Equal(t, workoutClock(), w.Date)
		assert.False(t, w.Completed)
	}
	assert.Equal(t, 20, s.PersonalBests()[entity.CategoryCardio])
	assert.Equal(t, 0, s.PersonalBests()[entity.CategoryStrength])
	assert.Equal(t, metrics.WorkoutSummary{TotalWorkouts: 3, TotalTime: 45}, s.WeeklySummary())

	workouts := s.Workouts()
	require.Len(t, workouts, 3)
	assert.Equal(t, 15, workouts[0].Duration, "newest first")
	assert.Equal(t, 10, workouts[2].Duration)

	reloaded := store.NewWorkoutStore(ctx, adapter)
	assert.Equal(t, s.Workouts(), reloaded.Workouts())
	assert.Equal(t, s.PersonalBests(), reloaded.PersonalBests())
}

func TestWorkoutLogValidation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	persistence := mocks.NewMockWorkoutPersistence(ctrl)
	persistence.EXPECT().LoadWorkouts(gomock.Any()).Return(nil)
	persistence.EXPECT().LoadFavorites(gomock.Any()).Return(nil)
	persistence.EXPECT().LoadPersonalBests(gomock.Any()).Return(entity.NewPersonalBests())
	s := store.NewWorkoutStore(ctx, persistence)

	testCases := []struct {
		Desc  string
		Draft entity.WorkoutDraft
	}{
		{Desc: "zero duration", Draft: entity.WorkoutDraft{Type: "Row", Duration: 0, Category: entity.CategoryCardio}},
		{Desc: "negative duration", Draft: entity.WorkoutDraft{Type: "Row", Duration: -4, Category: entity.CategoryCardio}},
		{Desc: "unknown category", Draft: entity.WorkoutDraft{Type: "Row", Duration: 10, Category: "Dance"}},
		{Desc: "blank type", Draft: entity.WorkoutDraft{Type: " ", Duration: 10, Category: entity.CategoryOther}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.Log(ctx, tc.Draft)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
			assert.Empty(t, s.Workouts())
		})
	}
}

func TestWorkoutStorageFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	existing := entity.Workout{Type: "Yoga", Duration: 30, Category: entity.CategoryFlexibility, Date: workoutClock()}
	storageErr := fmt.Errorf("%w: quota exceeded", errorvalues.ErrStorage)
	draft := entity.WorkoutDraft{Type: "Squats", Duration: 25, Category: entity.CategoryStrength}

	testCases := []struct {
		Desc         string
		MockPrepFunc func(p *mocks.MockWorkoutPersistence)
	}{
		{
			Desc: "workouts not saved",
			MockPrepFunc: func(p *mocks.MockWorkoutPersistence) {
				p.EXPECT().SaveWorkouts(gomock.Any(), gomock.Len(2)).Return(storageErr)
			},
		},
		{
			Desc: "personal bests not saved",
			MockPrepFunc: func(p *mocks.MockWorkoutPersistence) {
				gomock.InOrder(
					p.EXPECT().SaveWorkouts(gomock.Any(), gomock.Len(2)).Return(nil),
					p.EXPECT().SavePersonalBests(gomock.Any(), gomock.Any()).Return(storageErr),
					p.EXPECT().SaveWorkouts(gomock.Any(), []entity.Workout{existing}).Return(nil),
				)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := mocks.NewMockWorkoutPersistence(ctrl)
			p.EXPECT().LoadWorkouts(gomock.Any()).Return([]entity.Workout{existing})
			p.EXPECT().LoadFavorites(gomock.Any()).Return([]string{})
			p.EXPECT().LoadPersonalBests(gomock.Any()).Return(entity.PersonalBests{entity.CategoryFlexibility: 30})
			s := store.NewWorkoutStore(ctx, p, store.WithClock(workoutClock))
			before := s.PersonalBests()
			tc.MockPrepFunc(p)

			_, err := s.Log(ctx, draft)
			assert.ErrorIs(t, err, errorvalues.ErrStorage)
			assert.Equal(t, []entity.Workout{existing}, s.Workouts())
			assert.Equal(t, before, s.PersonalBests())
			assert.Equal(t, store.Error, s.State())
		})
	}
}

func TestWorkoutToggleAndRemove(t *testing.T) {
	ctx := context.Background()
	s := store.NewWorkoutStore(ctx, storage.NewAdapter(storage.NewMemoryKV(), nil), store.WithClock(workoutClock))
	_, err := s.Log(ctx, entity.WorkoutDraft{Type: "Deadlift", Duration: 40, Category: entity.CategoryStrength})
	require.NoError(t, err)
	_, err = s.Log(ctx, entity.WorkoutDraft{Type: "Plank", Duration: 5, Category: entity.CategoryStrength})
	require.NoError(t, err)

	require.NoError(t, s.ToggleComplete(ctx, 1))
	assert.True(t, s.Workouts()[1].Completed)
	assert.False(t, s.Workouts()[0].Completed)
	require.NoError(t, s.ToggleComplete(ctx, 1))
	assert.False(t, s.Workouts()[1].Completed)

	err = s.ToggleComplete(ctx, 5)
	assert.ErrorIs(t, err, errorvalues.ErrNotFound)

	ok, err := s.Remove(ctx, 0, func() bool { return false })
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Len(t, s.Workouts(), 2)

	ok, err = s.Remove(ctx, 1, func() bool { return true })
	assert.True(t, ok)
	assert.NoError(t, err)
	require.Len(t, s.Workouts(), 1)
	assert.Equal(t, "Plank", s.Workouts()[0].Type)
	assert.Equal(t, 40, s.PersonalBests()[entity.CategoryStrength], "personal bests survive removal")

	_, err = s.Remove(ctx, -1, func() bool { return true })
	assert.ErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
}

func TestWorkoutFavorites(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockWorkoutPersistence(ctrl)
	p.EXPECT().LoadWorkouts(gomock.Any()).Return([]entity.Workout{})
	p.EXPECT().LoadFavorites(gomock.Any()).Return([]string{"Yoga"})
	p.EXPECT().LoadPersonalBests(gomock.Any()).Return(entity.NewPersonalBests())
	s := store.NewWorkoutStore(ctx, p)

	var snapshots []store.WorkoutSnapshot
	defer s.Subscribe(func(snap store.WorkoutSnapshot) { snapshots = append(snapshots, snap) })()

	p.EXPECT().SaveFavorites(gomock.Any(), []string{"Yoga", "Running"}).Return(nil).Times(1)
	require.NoError(t, s.AddFavorite(ctx, "Running"))
	require.NoError(t, s.AddFavorite(ctx, " Running "))
	require.NoError(t, s.AddFavorite(ctx, "Yoga"))
	assert.Equal(t, []string{"Yoga", "Running"}, s.Favorites())
	assert.ErrorIs(t, s.AddFavorite(ctx, "  "), errorvalues.ErrValidation)

	p.EXPECT().SaveFavorites(gomock.Any(), []string{"Running"}).Return(nil)
	require.NoError(t, s.RemoveFavorite(ctx, "Yoga"))
	require.NoError(t, s.RemoveFavorite(ctx, "Pilates"))
	assert.Equal(t, []string{"Running"}, s.Favorites())

	p.EXPECT().SaveFavorites(gomock.Any(), gomock.Any()).Return(errorvalues.ErrStorage)
	assert.ErrorIs(t, s.AddFavorite(ctx, "Boxing"), errorvalues.ErrStorage)
	assert.Equal(t, []string{"Running"}, s.Favorites())

	require.NotEmpty(t, snapshots)
	assert.Equal(t, []string{"Running"}, snapshots[len(snapshots)-1].Favorites)
}
