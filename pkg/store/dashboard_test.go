package store_test

import (
	"context"
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

func TestDashboardRefresh(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	activityRemote := mocks.NewMockActivityRemote(ctrl)
	goalRemote := mocks.NewMockGoalRemote(ctrl)
	activities := store.NewActivityStore(activityRemote)
	goals := store.NewGoalStore(goalRemote)
	dashboard := store.NewDashboard(activities, goals)

	halfway := entity.Goal{ID: "g1", Type: "Run 10k", Target: 10, TargetLeft: 5}

	activityRemote.EXPECT().List(gomock.Any()).Return([]entity.Activity{runActivity, swimActivity}, nil)
	goalRemote.EXPECT().List(gomock.Any()).Return([]entity.Goal{halfway}, nil)
	view, err := dashboard.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, metrics.ActivitySummary{Count: 2, TotalDuration: 75, TotalCalories: 710}, view.Summary)
	assert.Equal(t, metrics.DashboardTip(view.Summary), view.Tip)
	require.Len(t, view.Goals, 1)
	assert.Equal(t, metrics.Halfway, view.Goals[0].Tier)
	assert.InDelta(t, 50.0, view.Goals[0].Percent, 1e-9)

	activityRemote.EXPECT().List(gomock.Any()).Return(nil, errorvalues.ErrNetwork)
	goalRemote.EXPECT().List(gomock.Any()).Return([]entity.Goal{}, nil).MaxTimes(1)
	view, err = dashboard.Refresh(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrNetwork)
	assert.Equal(t, 2, view.Summary.Count, "activities keep their last good state")
	assert.Equal(t, store.Error, activities.State())
}
