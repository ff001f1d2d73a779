package store

import (
	"context"

	"github.com/limbo/fitfusion/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

type DashboardView struct {
	Summary metrics.ActivitySummary `json:"summary"`
	Tip     string                  `json:"tip"`
	Streak  metrics.Streak          `json:"streak"`
	Goals   []GoalProgress          `json:"goals"`
}

type Dashboard struct {
	activities *ActivityStore
	goals      *GoalStore
}

func NewDashboard(activities *ActivityStore, goals *GoalStore) *Dashboard {
	return &Dashboard{
		activities: activities,
		goals:      goals,
	}
}

// Refresh reloads activities and goals concurrently. The view is built
// from whatever the stores hold afterwards, so it is returned even on error.
func (d *Dashboard) Refresh(ctx context.Context) (DashboardView, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.activities.Refresh(gctx)
	})
	g.Go(func() error {
		return d.goals.Refresh(gctx)
	})
	err := g.Wait()
	return d.View(), err
}

func (d *Dashboard) View() DashboardView {
	summary := d.activities.Summary()
	return DashboardView{
		Summary: summary,
		Tip:     metrics.DashboardTip(summary),
		Streak:  d.activities.Streak(),
		Goals:   d.goals.AllProgress(),
	}
}
