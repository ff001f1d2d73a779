package store_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/metrics"
	"github.com/limbo/fitfusion/pkg/store"
	"github.com/limbo/fitfusion/pkg/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goalBackend behaves like the /goals resource
type goalBackend struct {
	mu     sync.Mutex
	goals  []entity.Goal
	nextID int
}

func (b *goalBackend) List(ctx context.Context) ([]entity.Goal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.goals), nil
}

func (b *goalBackend) Create(ctx context.Context, draft entity.GoalDraft) (*entity.Goal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	goal := entity.Goal{
		ID:         fmt.Sprintf("g%d", b.nextID),
		Type:       draft.Type,
		Target:     draft.Target,
		TargetLeft: draft.TargetLeft,
		Completed:  draft.TargetLeft == 0,
	}
	b.goals = append(b.goals, goal)
	return &goal, nil
}

func (b *goalBackend) Update(ctx context.Context, id string, patch entity.GoalDraft) (*entity.Goal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.goals {
		if b.goals[i].ID == id {
			b.goals[i].Type = patch.Type
			b.goals[i].Target = patch.Target
			b.goals[i].TargetLeft = patch.TargetLeft
			b.goals[i].Completed = patch.TargetLeft == 0
			goal := b.goals[i]
			return &goal, nil
		}
	}
	return nil, errorvalues.ErrGoalNotFound
}

func (b *goalBackend) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := slices.IndexFunc(b.goals, func(g entity.Goal) bool { return g.ID == id })
	if idx < 0 {
		return errorvalues.ErrGoalNotFound
	}
	b.goals = slices.Delete(b.goals, idx, idx+1)
	return nil
}

func TestGoalProgressLifecycle(t *testing.T) {
	ctx := context.Background()
	s := store.NewGoalStore(&goalBackend{})

	require.NoError(t, s.Submit(ctx, entity.GoalDraft{Type: "Run 5k", Target: 5, TargetLeft: 5}))
	require.Len(t, s.Goals(), 1)
	goal := s.Goals()[0]

	steps := []struct {
		TargetLeft float64
		Percent    float64
		Tier       metrics.Tier
	}{
		{TargetLeft: 5, Percent: 0, Tier: metrics.StayConsistent},
		{TargetLeft: 1, Percent: 80, Tier: metrics.AlmostThere},
		{TargetLeft: 0, Percent: 100, Tier: metrics.Achieved},
	}
	for i, step := range steps {
		if i > 0 {
			current := s.Goals()[0]
			s.SetEditing(&current)
			draft := s.Draft()
			draft.TargetLeft = step.TargetLeft
			require.NoError(t, s.Submit(ctx, draft))
			assert.Nil(t, s.Editing())
		}
		progress, err := s.Progress(goal.ID)
		require.NoError(t, err)
		assert.InDelta(t, step.Percent, progress.Percent, 1e-9)
		assert.Equal(t, step.Tier, progress.Tier)
		assert.Equal(t, step.TargetLeft == 0, progress.Completed)
	}
	assert.Equal(t, "Goal Achieved! Great Job!", s.AllProgress()[0].Message)
	assert.Equal(t, 5, s.AllProgress()[0].FireFull)
}

func TestGoalStoreRejectsTargetLeftAboveTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockGoalRemote(ctrl)
	s := store.NewGoalStore(remote)

	draft := entity.GoalDraft{Type: "Read books", Target: 10, TargetLeft: 15}
	err := s.Submit(context.Background(), draft)
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	assert.Empty(t, s.Goals())
	assert.Equal(t, draft, s.Draft())
	assert.Equal(t, store.Idle, s.State())
}

func TestGoalStoreMarkComplete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockGoalRemote(ctrl)
	s := store.NewGoalStore(remote)

	goal := entity.Goal{ID: "g1", Type: "Swim", Target: 20, TargetLeft: 12}
	remote.EXPECT().List(gomock.Any()).Return([]entity.Goal{goal}, nil)
	require.NoError(t, s.Refresh(ctx))

	t.Run("unknown goal", func(t *testing.T) {
		err := s.MarkComplete(ctx, "missing")
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
	t.Run("known goal", func(t *testing.T) {
		done := goal
		done.TargetLeft = 0
		done.Completed = true
		gomock.InOrder(
			remote.EXPECT().Update(gomock.Any(), "g1", entity.GoalDraft{Type: "Swim", Target: 20, TargetLeft: 0}).Return(&done, nil),
			remote.EXPECT().List(gomock.Any()).Return([]entity.Goal{done}, nil),
		)
		require.NoError(t, s.MarkComplete(ctx, "g1"))
		progress, err := s.Progress("g1")
		require.NoError(t, err)
		assert.Equal(t, metrics.Achieved, progress.Tier)
		assert.True(t, s.Goals()[0].IsCompleted())
	})
	t.Run("network failure keeps goal", func(t *testing.T) {
		remote.EXPECT().List(gomock.Any()).Return([]entity.Goal{goal}, nil)
		require.NoError(t, s.Refresh(ctx))
		remote.EXPECT().Update(gomock.Any(), "g1", gomock.Any()).Return(nil, errorvalues.ErrNetwork)
		assert.ErrorIs(t, s.MarkComplete(ctx, "g1"), errorvalues.ErrNetwork)
		assert.Equal(t, []entity.Goal{goal}, s.Goals())
		assert.Equal(t, store.Error, s.State())
	})
}

func TestGoalStoreRemove(t *testing.T) {
	ctx := context.Background()
	backend := &goalBackend{}
	s := store.NewGoalStore(backend)
	require.NoError(t, s.Submit(ctx, entity.GoalDraft{Type: "Stretch", Target: 3, TargetLeft: 3}))
	id := s.Goals()[0].ID
	s.SetEditing(&s.Goals()[0])

	ok, err := s.Remove(ctx, id, func() bool { return false })
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Len(t, s.Goals(), 1)

	ok, err = s.Remove(ctx, id, func() bool { return true })
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Empty(t, s.Goals())
	assert.Nil(t, s.Editing(), "removing the edited goal leaves edit mode")

	_, err = s.Progress(id)
	assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
}
