package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/storage"
	"github.com/limbo/fitfusion/pkg/store"
	"github.com/limbo/fitfusion/pkg/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() store.Option {
	n := 0
	return store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("c%d", n)
	})
}

func TestChallengeLifecycle(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewAdapter(storage.NewMemoryKV(), nil)
	s := store.NewChallengeStore(ctx, adapter, sequentialIDs())

	challenge, err := s.Create(ctx, entity.ChallengeDraft{Description: "Walk daily", Duration: 7})
	require.NoError(t, err)
	assert.Equal(t, "c1", challenge.ID)
	assert.Equal(t, 0, challenge.Progress)
	assert.Equal(t, entity.DifficultyMedium, challenge.Difficulty)

	for i := 0; i < 7; i++ {
		require.NoError(t, s.AddProgress(ctx, challenge.ID))
	}
	current := s.Challenges()[0]
	assert.Equal(t, 7, current.Progress)
	assert.True(t, current.Completed)
	percent, err := s.Progress(challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, percent)

	require.NoError(t, s.AddProgress(ctx, challenge.ID))
	assert.Equal(t, current, s.Challenges()[0], "progress stops at duration")

	require.NoError(t, s.Reset(ctx, challenge.ID))
	current = s.Challenges()[0]
	assert.Equal(t, 0, current.Progress)
	assert.False(t, current.Completed)

	reloaded := store.NewChallengeStore(ctx, adapter)
	assert.Equal(t, s.Challenges(), reloaded.Challenges())
}

func TestChallengeCreateValidation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockChallengePersistence(ctrl)
	p.EXPECT().LoadChallenges(gomock.Any()).Return(nil)
	s := store.NewChallengeStore(ctx, p)

	testCases := []struct {
		Desc  string
		Draft entity.ChallengeDraft
	}{
		{Desc: "blank description", Draft: entity.ChallengeDraft{Description: "  ", Duration: 7}},
		{Desc: "zero duration", Draft: entity.ChallengeDraft{Description: "Push ups", Duration: 0}},
		{Desc: "unknown difficulty", Draft: entity.ChallengeDraft{Description: "Push ups", Duration: 3, Difficulty: "Extreme"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.Create(ctx, tc.Draft)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
			assert.Empty(t, s.Challenges())
		})
	}
}

func TestChallengeEdit(t *testing.T) {
	ctx := context.Background()
	s := store.NewChallengeStore(ctx, storage.NewAdapter(storage.NewMemoryKV(), nil), sequentialIDs())
	assert.Equal(t, store.NewChallengeDraft(), s.Draft())

	require.NoError(t, s.Submit(ctx, entity.ChallengeDraft{Description: "Plank", Duration: 5, Difficulty: entity.DifficultyHard}))
	challenge := s.Challenges()[0]
	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddProgress(ctx, challenge.ID))
	}

	s.SetEditing(&challenge)
	assert.Equal(t, "Plank", s.Draft().Description)

	err := s.Submit(ctx, entity.ChallengeDraft{Description: "Plank", Duration: 2, Difficulty: entity.DifficultyHard})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	assert.NotNil(t, s.Editing(), "failed edit stays in edit mode")
	assert.Equal(t, 5, s.Challenges()[0].Duration)
	assert.Equal(t, store.Idle, s.State())

	require.NoError(t, s.Submit(ctx, entity.ChallengeDraft{Description: "Long plank", Duration: 3, Difficulty: entity.DifficultyEasy}))
	edited := s.Challenges()[0]
	assert.Equal(t, "Long plank", edited.Description)
	assert.Equal(t, 3, edited.Progress)
	assert.True(t, edited.Completed)
	assert.Equal(t, entity.DifficultyEasy, edited.Difficulty)
	assert.Nil(t, s.Editing())
	assert.Equal(t, store.NewChallengeDraft(), s.Draft())
}

func TestChallengeRemoveAndUnknownID(t *testing.T) {
	ctx := context.Background()
	s := store.NewChallengeStore(ctx, storage.NewAdapter(storage.NewMemoryKV(), nil), sequentialIDs())
	c, err := s.Create(ctx, entity.ChallengeDraft{Description: "Swim", Duration: 4})
	require.NoError(t, err)

	assert.ErrorIs(t, s.AddProgress(ctx, "nope"), errorvalues.ErrChallengeNotFound)
	assert.ErrorIs(t, s.Reset(ctx, "nope"), errorvalues.ErrNotFound)
	_, err = s.Progress("nope")
	assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)

	ok, err := s.Remove(ctx, c.ID, nil)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Len(t, s.Challenges(), 1)

	ok, err = s.Remove(ctx, c.ID, func() bool { return true })
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Empty(t, s.Challenges())
}

func TestChallengeStorageFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockChallengePersistence(ctrl)
	existing := entity.Challenge{ID: "c1", Description: "Walk", Duration: 7, Progress: 2, Difficulty: entity.DifficultyEasy}
	p.EXPECT().LoadChallenges(gomock.Any()).Return([]entity.Challenge{existing})
	s := store.NewChallengeStore(ctx, p)

	p.EXPECT().SaveChallenges(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: quota exceeded", errorvalues.ErrStorage)).Times(3)
	assert.ErrorIs(t, s.AddProgress(ctx, "c1"), errorvalues.ErrStorage)
	assert.ErrorIs(t, s.Reset(ctx, "c1"), errorvalues.ErrStorage)
	_, err := s.Create(ctx, entity.ChallengeDraft{Description: "Run", Duration: 3})
	assert.ErrorIs(t, err, errorvalues.ErrStorage)

	assert.Equal(t, []entity.Challenge{existing}, s.Challenges())
	assert.Equal(t, store.Error, s.State())
}
