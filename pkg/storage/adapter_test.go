package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct {
	getErr error
	setErr error
}

func (f *failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	return f.setErr
}

var (
	testDate     = time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)
	testWorkouts = []entity.Workout{
		{Type: "Running", Duration: 30, Category: entity.CategoryCardio, Date: testDate, Completed: true},
		{Type: "Yoga", Duration: 45, Category: entity.CategoryFlexibility, Date: testDate.Add(-time.Hour)},
	}
	testChallenges = []entity.Challenge{
		{ID: "c1", Description: "Walk daily", Duration: 7, Progress: 3, Difficulty: entity.DifficultyMedium},
		{ID: "c2", Description: "Plank", Duration: 3, Progress: 3, Difficulty: entity.DifficultyHard, Completed: true, Reminder: true},
	}
)

func TestAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewAdapter(storage.NewMemoryKV(), nil)
	t.Run("workouts", func(t *testing.T) {
		require.NoError(t, adapter.SaveWorkouts(ctx, []entity.Workout{}))
		assert.Equal(t, []entity.Workout{}, adapter.LoadWorkouts(ctx))
		require.NoError(t, adapter.SaveWorkouts(ctx, testWorkouts))
		assert.Equal(t, testWorkouts, adapter.LoadWorkouts(ctx))
	})
	t.Run("favorites", func(t *testing.T) {
		require.NoError(t, adapter.SaveFavorites(ctx, nil))
		assert.Equal(t, []string{}, adapter.LoadFavorites(ctx))
		require.NoError(t, adapter.SaveFavorites(ctx, []string{"Running", "Yoga"}))
		assert.Equal(t, []string{"Running", "Yoga"}, adapter.LoadFavorites(ctx))
	})
	t.Run("personal bests", func(t *testing.T) {
		bests := entity.NewPersonalBests()
		require.NoError(t, adapter.SavePersonalBests(ctx, bests))
		assert.Equal(t, bests, adapter.LoadPersonalBests(ctx))
		bests[entity.CategoryStrength] = 55
		require.NoError(t, adapter.SavePersonalBests(ctx, bests))
		assert.Equal(t, bests, adapter.LoadPersonalBests(ctx))
	})
	t.Run("challenges", func(t *testing.T) {
		require.NoError(t, adapter.SaveChallenges(ctx, []entity.Challenge{}))
		assert.Equal(t, []entity.Challenge{}, adapter.LoadChallenges(ctx))
		require.NoError(t, adapter.SaveChallenges(ctx, testChallenges))
		assert.Equal(t, testChallenges, adapter.LoadChallenges(ctx))
	})
	t.Run("theme", func(t *testing.T) {
		assert.Equal(t, entity.ThemeLight, adapter.LoadTheme(ctx))
		require.NoError(t, adapter.SaveTheme(ctx, entity.ThemeDark))
		assert.Equal(t, entity.ThemeDark, adapter.LoadTheme(ctx))
	})
}

func TestAdapterDefaults(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewAdapter(storage.NewMemoryKV(), nil)
	assert.Equal(t, []entity.Workout{}, adapter.LoadWorkouts(ctx))
	assert.Equal(t, []string{}, adapter.LoadFavorites(ctx))
	assert.Equal(t, []entity.Challenge{}, adapter.LoadChallenges(ctx))
	assert.Equal(t, entity.PersonalBests{
		entity.CategoryCardio:      0,
		entity.CategoryStrength:    0,
		entity.CategoryFlexibility: 0,
		entity.CategoryOther:       0,
	}, adapter.LoadPersonalBests(ctx))
}

func TestAdapterCorruptData(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	adapter := storage.NewAdapter(kv, nil)
	testCases := []struct {
		Desc string
		Raw  string
	}{
		{Desc: "not json", Raw: "{{{not json"},
		{Desc: "wrong shape", Raw: `{"type":"Running"}`},
		{Desc: "truncated", Raw: `[{"type":"Run`},
		{Desc: "null", Raw: `null`},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			for _, key := range []string{storage.KeyWorkouts, storage.KeyFavorites, storage.KeyChallenges} {
				require.NoError(t, kv.Set(ctx, key, tc.Raw))
			}
			assert.NotPanics(t, func() {
				assert.Equal(t, []entity.Workout{}, adapter.LoadWorkouts(ctx))
				assert.Equal(t, []string{}, adapter.LoadFavorites(ctx))
				assert.Equal(t, []entity.Challenge{}, adapter.LoadChallenges(ctx))
			})
		})
	}
	t.Run("personal bests", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, storage.KeyPersonalBests, "[1,2"))
		assert.Equal(t, entity.NewPersonalBests(), adapter.LoadPersonalBests(ctx))
	})
	t.Run("personal bests missing categories", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, storage.KeyPersonalBests, `{"Cardio":25}`))
		bests := adapter.LoadPersonalBests(ctx)
		assert.Equal(t, 25, bests[entity.CategoryCardio])
		assert.Len(t, bests, len(entity.Categories))
	})
}

func TestAdapterBackendErrors(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewAdapter(&failingKV{
		getErr: errors.New("disk gone"),
		setErr: errors.New("quota exceeded"),
	}, nil)
	assert.Equal(t, []entity.Workout{}, adapter.LoadWorkouts(ctx))
	assert.Equal(t, entity.ThemeLight, adapter.LoadTheme(ctx))

	err := adapter.SaveWorkouts(ctx, testWorkouts)
	assert.ErrorIs(t, err, errorvalues.ErrStorage)
	err = adapter.SaveTheme(ctx, entity.ThemeDark)
	assert.ErrorIs(t, err, errorvalues.ErrStorage)
}
