package api_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/fitfusion/pkg/client"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerWithClient(t *testing.T) {
	f := newFixture(t)
	ts := httptest.NewServer(f.server.Handler())
	defer ts.Close()
	c := client.New(ts.URL)
	ctx := context.Background()

	id := uuid.NewString()
	draft := entity.ActivityDraft{Type: "Cycling", Duration: 45, CaloriesBurned: 400}
	f.activities.EXPECT().Create(gomock.Any(), &draft).
		Return(&entity.Activity{ID: id, Type: "Cycling", Duration: 45, CaloriesBurned: 400}, nil)
	created, err := c.Activities().Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)

	f.activities.EXPECT().Delete(gomock.Any(), id).Return(errorvalues.ErrActivityNotFound)
	err = c.Activities().Delete(ctx, id)
	assert.ErrorIs(t, err, errorvalues.ErrNotFound)

	f.goals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrValidation)
	_, err = c.Goals().Create(ctx, entity.GoalDraft{Type: "Steps", Target: 1, TargetLeft: 1})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestRunAndShutdown(t *testing.T) {
	f := newFixture(t)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	done := make(chan error, 1)
	go func() {
		done <- f.server.Run(addr)
	}()
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.server.Shutdown(ctx))
	assert.NoError(t, <-done)
}
