package store

import (
	"context"

	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/metrics"
)

type GoalStore struct {
	remoteStore[entity.Goal, entity.GoalDraft]
}

// GoalProgress is everything a goal card shows
type GoalProgress struct {
	GoalID    string       `json:"goalId"`
	Type      string       `json:"type"`
	Percent   float64      `json:"percent"`
	Tier      metrics.Tier `json:"tier"`
	Message   string       `json:"message"`
	FireFull  int          `json:"fireFull"`
	FireHalf  int          `json:"fireHalf"`
	FireEmpty int          `json:"fireEmpty"`
	Completed bool         `json:"completed"`
}

func NewGoalStore(remote GoalRemote, opts ...Option) *GoalStore {
	s := &GoalStore{}
	s.setup(remote, func(g entity.Goal) string { return g.ID }, entity.Goal.Draft, buildOptions(opts), "goals")
	return s
}

func (s *GoalStore) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *GoalStore) SetEditing(goal *entity.Goal) {
	s.setEditing(goal)
}

func (s *GoalStore) Editing() *entity.Goal {
	return s.editingItem()
}

func (s *GoalStore) Draft() entity.GoalDraft {
	return s.currentDraft()
}

// Submit validates target and targetLeft together before anything is sent
func (s *GoalStore) Submit(ctx context.Context, draft entity.GoalDraft) error {
	return s.submit(ctx, draft)
}

// MarkComplete sets targetLeft of a known goal to 0
func (s *GoalStore) MarkComplete(ctx context.Context, id string) error {
	goal, ok := s.find(id)
	if !ok {
		return errorvalues.ErrGoalNotFound
	}
	patch := goal.Draft()
	patch.TargetLeft = 0
	return s.update(ctx, id, patch)
}

func (s *GoalStore) Remove(ctx context.Context, id string, confirm Confirm) (bool, error) {
	return s.remove(ctx, id, confirm)
}

func (s *GoalStore) Goals() []entity.Goal {
	return s.list()
}

func (s *GoalStore) Progress(id string) (GoalProgress, error) {
	goal, ok := s.find(id)
	if !ok {
		return GoalProgress{}, errorvalues.ErrGoalNotFound
	}
	return progressOf(goal), nil
}

// AllProgress returns progress of every goal in collection order
func (s *GoalStore) AllProgress() []GoalProgress {
	goals := s.list()
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, progressOf(g))
	}
	return out
}

func progressOf(g entity.Goal) GoalProgress {
	percent := metrics.GoalProgressPercent(g)
	tier := metrics.MotivationalTier(percent)
	full, half, empty := metrics.FireRating(percent)
	return GoalProgress{
		GoalID:    g.ID,
		Type:      g.Type,
		Percent:   percent,
		Tier:      tier,
		Message:   tier.Message(),
		FireFull:  full,
		FireHalf:  half,
		FireEmpty: empty,
		Completed: g.IsCompleted(),
	}
}
