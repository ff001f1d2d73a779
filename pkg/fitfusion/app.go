// Package fitfusion assembles the client side: remote stores for activities
// and goals, local stores for workouts and challenges, and the dashboard.
package fitfusion

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/limbo/fitfusion/pkg/cleanup"
	"github.com/limbo/fitfusion/pkg/client"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/storage"
	"github.com/limbo/fitfusion/pkg/store"
)

const DefaultAPIURL = "http://localhost:5000"

type Config interface {
	GetStringOr(key, fallback string) string
	GetDuration(key string, fallback time.Duration) time.Duration
}

type App struct {
	Activities *store.ActivityStore
	Goals      *store.GoalStore
	Workouts   *store.WorkoutStore
	Challenges *store.ChallengeStore
	Dashboard  *store.Dashboard

	adapter *storage.Adapter
	logger  *slog.Logger
}

// Open reads FITFUSION_API_URL, FITFUSION_HTTP_TIMEOUT and the storage keys from cfg
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*App, error) {
	kv, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, errors.New("opening local storage error: " + err.Error())
	}
	api := client.New(
		cfg.GetStringOr("FITFUSION_API_URL", DefaultAPIURL),
		client.WithTimeout(cfg.GetDuration("FITFUSION_HTTP_TIMEOUT", client.DefaultTimeout)),
		client.WithLogger(loggerOrDefault(logger)),
	)
	return New(ctx, api, kv, logger), nil
}

// New builds the stores over an already constructed client and key-value backend
func New(ctx context.Context, api *client.Client, kv storage.KV, logger *slog.Logger) *App {
	logger = loggerOrDefault(logger)
	adapter := storage.NewAdapter(kv, logger)
	activities := store.NewActivityStore(api.Activities(), store.WithLogger(logger))
	goals := store.NewGoalStore(api.Goals(), store.WithLogger(logger))
	return &App{
		Activities: activities,
		Goals:      goals,
		Workouts:   store.NewWorkoutStore(ctx, adapter, store.WithLogger(logger)),
		Challenges: store.NewChallengeStore(ctx, adapter, store.WithLogger(logger)),
		Dashboard:  store.NewDashboard(activities, goals),
		adapter:    adapter,
		logger:     logger,
	}
}

func (a *App) Theme(ctx context.Context) entity.Theme {
	return a.adapter.LoadTheme(ctx)
}

// ToggleTheme flips between light and dark and persists the result
func (a *App) ToggleTheme(ctx context.Context) (entity.Theme, error) {
	next := entity.ThemeDark
	if a.Theme(ctx) == entity.ThemeDark {
		next = entity.ThemeLight
	}
	if err := a.adapter.SaveTheme(ctx, next); err != nil {
		return a.Theme(ctx), err
	}
	return next, nil
}

// Close releases storage handles registered while opening
func (a *App) Close() {
	cleanup.CleanUp()
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
