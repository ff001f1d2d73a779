package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

type State int

const (
	Idle State = iota
	Fetching
	Mutating
	Error
)

func (s State) String() string {
	switch s {
	case Fetching:
		return "fetching"
	case Mutating:
		return "mutating"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Confirm gates destructive operations. Nil or false cancels the operation
type Confirm func() bool

type options struct {
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces the clock used to date workouts and to age activity streaks
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator replaces uuid generation for challenges
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC().Round(0) },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// core is the state machine shared by all stores. Operations pass through
// a weighted semaphore of size one, whose waiters are served in arrival order,
// so mutations and refreshes of one store apply one at a time in request order.
type core[S any] struct {
	mu    sync.RWMutex
	state State
	err   error

	gate   *semaphore.Weighted
	subs   subscribers[S]
	logger *slog.Logger
}

func (c *core[S]) initCore(logger *slog.Logger, name string) {
	c.gate = semaphore.NewWeighted(1)
	c.logger = logger.With(slog.String("store", name))
}

// begin waits for the store's turn. Waiting honours ctx, the returned func releases the turn
func (c *core[S]) begin(ctx context.Context, state State) (func(), error) {
	if err := c.gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.state = state
	c.err = nil
	c.mu.Unlock()
	return func() { c.gate.Release(1) }, nil
}

func (c *core[S]) fail(op string, err error) error {
	c.mu.Lock()
	c.state = Error
	c.err = err
	c.mu.Unlock()
	c.logger.Error(op+" error", slog.String("error", err.Error()))
	return err
}

func (c *core[S]) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Err returns the error of the last failed operation while the store is in Error state
func (c *core[S]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Subscribe registers fn for snapshots published after every successful operation.
// Nothing is delivered once the returned unsubscribe func has been called.
// fn runs on the goroutine that performed the operation and must not start store operations itself.
func (c *core[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	return c.subs.add(fn)
}

type subscription[S any] struct {
	fn     func(S)
	active atomic.Bool
}

type subscribers[S any] struct {
	mu   sync.Mutex
	list []*subscription[S]
}

func (s *subscribers[S]) add(fn func(S)) func() {
	sub := &subscription[S]{fn: fn}
	sub.active.Store(true)
	s.mu.Lock()
	s.list = append(s.list, sub)
	s.mu.Unlock()
	return func() {
		if !sub.active.CompareAndSwap(true, false) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.list = slices.DeleteFunc(s.list, func(other *subscription[S]) bool { return other == sub })
	}
}

func (s *subscribers[S]) publish(snapshot S) {
	s.mu.Lock()
	list := slices.Clone(s.list)
	s.mu.Unlock()
	for _, sub := range list {
		if sub.active.Load() {
			sub.fn(snapshot)
		}
	}
}
