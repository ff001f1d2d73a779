package store

import (
	"context"
	"time"

	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/metrics"
)

type ActivityStore struct {
	remoteStore[entity.Activity, entity.ActivityDraft]
	now func() time.Time
}

func NewActivityStore(remote ActivityRemote, opts ...Option) *ActivityStore {
	o := buildOptions(opts)
	s := &ActivityStore{now: o.now}
	s.setup(remote, func(a entity.Activity) string { return a.ID }, entity.Activity.Draft, o, "activities")
	return s
}

// Refresh replaces the collection with the server's list
func (s *ActivityStore) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

// SetEditing switches to edit mode for activity, nil switches back to create mode
func (s *ActivityStore) SetEditing(activity *entity.Activity) {
	s.setEditing(activity)
}

func (s *ActivityStore) Editing() *entity.Activity {
	return s.editingItem()
}

func (s *ActivityStore) Draft() entity.ActivityDraft {
	return s.currentDraft()
}

func (s *ActivityStore) Submit(ctx context.Context, draft entity.ActivityDraft) error {
	return s.submit(ctx, draft)
}

func (s *ActivityStore) Remove(ctx context.Context, id string, confirm Confirm) (bool, error) {
	return s.remove(ctx, id, confirm)
}

func (s *ActivityStore) Activities() []entity.Activity {
	return s.list()
}

func (s *ActivityStore) Summary() metrics.ActivitySummary {
	return metrics.Summary(s.list())
}

func (s *ActivityStore) Tip() string {
	return metrics.DashboardTip(s.Summary())
}

func (s *ActivityStore) Streak() metrics.Streak {
	return metrics.ActivityStreak(s.list(), s.now())
}

func (s *ActivityStore) Series() []metrics.SeriesPoint {
	return metrics.ActivitySeries(s.list())
}
