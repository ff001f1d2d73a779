package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
)

// Storage keys, one collection per key
const (
	KeyWorkouts      = "workouts"
	KeyFavorites     = "favorites"
	KeyPersonalBests = "personalBests"
	KeyChallenges    = "challenges"
	KeyTheme         = "theme"
)

// Adapter reads and writes collections as JSON text. It holds no state besides its backend.
// Loads never fail: absent or unreadable data degrades to the documented default.
type Adapter struct {
	kv     KV
	logger *slog.Logger
}

func NewAdapter(kv KV, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		kv:     kv,
		logger: logger.With(slog.String("component", "storage")),
	}
}

func (a *Adapter) LoadWorkouts(ctx context.Context) []entity.Workout {
	workouts := load(ctx, a, KeyWorkouts, func() []entity.Workout { return []entity.Workout{} })
	if workouts == nil {
		return []entity.Workout{}
	}
	return workouts
}

func (a *Adapter) SaveWorkouts(ctx context.Context, workouts []entity.Workout) error {
	if workouts == nil {
		workouts = []entity.Workout{}
	}
	return save(ctx, a, KeyWorkouts, workouts)
}

func (a *Adapter) LoadFavorites(ctx context.Context) []string {
	favorites := load(ctx, a, KeyFavorites, func() []string { return []string{} })
	if favorites == nil {
		return []string{}
	}
	return favorites
}

func (a *Adapter) SaveFavorites(ctx context.Context, favorites []string) error {
	if favorites == nil {
		favorites = []string{}
	}
	return save(ctx, a, KeyFavorites, favorites)
}

// LoadPersonalBests always returns every category, missing ones at 0
func (a *Adapter) LoadPersonalBests(ctx context.Context) entity.PersonalBests {
	bests := load(ctx, a, KeyPersonalBests, entity.NewPersonalBests)
	return bests.Clone()
}

func (a *Adapter) SavePersonalBests(ctx context.Context, bests entity.PersonalBests) error {
	return save(ctx, a, KeyPersonalBests, bests.Clone())
}

func (a *Adapter) LoadChallenges(ctx context.Context) []entity.Challenge {
	challenges := load(ctx, a, KeyChallenges, func() []entity.Challenge { return []entity.Challenge{} })
	if challenges == nil {
		return []entity.Challenge{}
	}
	return challenges
}

func (a *Adapter) SaveChallenges(ctx context.Context, challenges []entity.Challenge) error {
	if challenges == nil {
		challenges = []entity.Challenge{}
	}
	return save(ctx, a, KeyChallenges, challenges)
}

// Theme is stored as a bare string, not JSON
func (a *Adapter) LoadTheme(ctx context.Context) entity.Theme {
	raw, ok, err := a.kv.Get(ctx, KeyTheme)
	if err != nil {
		a.logger.Warn("reading theme error, using default", slog.String("error", err.Error()))
		return entity.ThemeLight
	}
	if ok && entity.Theme(raw) == entity.ThemeDark {
		return entity.ThemeDark
	}
	return entity.ThemeLight
}

func (a *Adapter) SaveTheme(ctx context.Context, theme entity.Theme) error {
	if err := a.kv.Set(ctx, KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("%w: saving %s: %w", errorvalues.ErrStorage, KeyTheme, err)
	}
	return nil
}

func load[T any](ctx context.Context, a *Adapter, key string, def func() T) T {
	raw, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		a.logger.Warn("reading stored collection error, using default",
			slog.String("key", key), slog.String("error", err.Error()))
		return def()
	}
	if !ok {
		return def()
	}
	var v T
	if err := sonic.UnmarshalString(raw, &v); err != nil {
		err = fmt.Errorf("%w: %s: %w", errorvalues.ErrDecode, key, err)
		a.logger.Warn("corrupt stored collection, using default",
			slog.String("key", key), slog.String("error", err.Error()))
		return def()
	}
	return v
}

func save[T any](ctx context.Context, a *Adapter, key string, v T) error {
	raw, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", errorvalues.ErrStorage, key, err)
	}
	if err := a.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: saving %s: %w", errorvalues.ErrStorage, key, err)
	}
	return nil
}
