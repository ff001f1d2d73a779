package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/metrics"
	"github.com/limbo/fitfusion/pkg/validation"
)

const DefaultChallengeDuration = 7

// NewChallengeDraft returns the draft a blank challenge form starts with
func NewChallengeDraft() entity.ChallengeDraft {
	return entity.ChallengeDraft{
		Duration:   DefaultChallengeDuration,
		Difficulty: entity.DifficultyMedium,
	}
}

type ChallengeStore struct {
	core[Snapshot[entity.Challenge]]

	persistence ChallengePersistence
	newID       func() string

	challenges []entity.Challenge
	editing    *entity.Challenge
	draft      entity.ChallengeDraft
}

func NewChallengeStore(ctx context.Context, persistence ChallengePersistence, opts ...Option) *ChallengeStore {
	o := buildOptions(opts)
	if o.newID == nil {
		o.newID = uuid.NewString
	}
	s := &ChallengeStore{
		persistence: persistence,
		newID:       o.newID,
		challenges:  persistence.LoadChallenges(ctx),
		draft:       NewChallengeDraft(),
	}
	if s.challenges == nil {
		s.challenges = []entity.Challenge{}
	}
	s.initCore(o.logger, "challenges")
	return s
}

// Create appends a challenge with no progress. Empty difficulty means Medium
func (s *ChallengeStore) Create(ctx context.Context, draft entity.ChallengeDraft) (entity.Challenge, error) {
	if draft.Difficulty == "" {
		draft.Difficulty = entity.DifficultyMedium
	}
	if err := validation.Struct(draft); err != nil {
		return entity.Challenge{}, err
	}
	challenge := entity.Challenge{
		ID:          s.newID(),
		Description: strings.TrimSpace(draft.Description),
		Duration:    draft.Duration,
		Difficulty:  draft.Difficulty,
		Reminder:    draft.Reminder,
	}
	err := s.mutate(ctx, "create challenge", func(challenges []entity.Challenge) ([]entity.Challenge, error) {
		return append(challenges, challenge), nil
	})
	if err != nil {
		return entity.Challenge{}, err
	}
	return challenge, nil
}

func (s *ChallengeStore) SetEditing(challenge *entity.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if challenge == nil {
		s.editing = nil
		s.draft = NewChallengeDraft()
		return
	}
	cp := *challenge
	s.editing = &cp
	s.draft = cp.Draft()
}

func (s *ChallengeStore) Editing() *entity.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editing == nil {
		return nil
	}
	cp := *s.editing
	return &cp
}

func (s *ChallengeStore) Draft() entity.ChallengeDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// Submit saves the edited challenge, or creates one when not editing.
// An edit may not shorten the duration below progress already made.
func (s *ChallengeStore) Submit(ctx context.Context, draft entity.ChallengeDraft) error {
	s.mu.Lock()
	s.draft = draft
	editing := s.editing
	s.mu.Unlock()

	if editing == nil {
		if _, err := s.Create(ctx, draft); err != nil {
			return err
		}
		s.clearEditing("")
		return nil
	}

	if draft.Difficulty == "" {
		draft.Difficulty = entity.DifficultyMedium
	}
	if err := validation.Struct(draft); err != nil {
		return err
	}
	id := editing.ID
	err := s.mutate(ctx, "edit challenge", func(challenges []entity.Challenge) ([]entity.Challenge, error) {
		idx := indexOfChallenge(challenges, id)
		if idx < 0 {
			return nil, errorvalues.ErrChallengeNotFound
		}
		c := &challenges[idx]
		if draft.Duration < c.Progress {
			return nil, fmt.Errorf("%w: duration cannot be less than progress %d", errorvalues.ErrValidation, c.Progress)
		}
		c.Description = strings.TrimSpace(draft.Description)
		c.Duration = draft.Duration
		c.Difficulty = draft.Difficulty
		c.Reminder = draft.Reminder
		c.Completed = c.Progress == c.Duration
		return challenges, nil
	})
	if err != nil {
		return err
	}
	s.clearEditing(id)
	return nil
}

// AddProgress adds one unit of progress. At full progress it changes nothing
func (s *ChallengeStore) AddProgress(ctx context.Context, id string) error {
	return s.mutate(ctx, "add challenge progress", func(challenges []entity.Challenge) ([]entity.Challenge, error) {
		idx := indexOfChallenge(challenges, id)
		if idx < 0 {
			return nil, errorvalues.ErrChallengeNotFound
		}
		c := &challenges[idx]
		if c.Progress >= c.Duration {
			return nil, nil
		}
		c.Progress++
		c.Completed = c.Progress == c.Duration
		return challenges, nil
	})
}

func (s *ChallengeStore) Reset(ctx context.Context, id string) error {
	return s.mutate(ctx, "reset challenge", func(challenges []entity.Challenge) ([]entity.Challenge, error) {
		idx := indexOfChallenge(challenges, id)
		if idx < 0 {
			return nil, errorvalues.ErrChallengeNotFound
		}
		challenges[idx].Progress = 0
		challenges[idx].Completed = false
		return challenges, nil
	})
}

func (s *ChallengeStore) Remove(ctx context.Context, id string, confirm Confirm) (bool, error) {
	if confirm == nil || !confirm() {
		return false, nil
	}
	err := s.mutate(ctx, "remove challenge", func(challenges []entity.Challenge) ([]entity.Challenge, error) {
		idx := indexOfChallenge(challenges, id)
		if idx < 0 {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return slices.Delete(challenges, idx, idx+1), nil
	})
	if err != nil {
		return false, err
	}
	s.clearEditing(id)
	return true, nil
}

func (s *ChallengeStore) Challenges() []entity.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.challenges)
}

func (s *ChallengeStore) Progress(id string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexOfChallenge(s.challenges, id)
	if idx < 0 {
		return 0, errorvalues.ErrChallengeNotFound
	}
	return metrics.ChallengeProgressPercent(s.challenges[idx]), nil
}

// mutate runs change on a copy of the collection and persists the result.
// Memory is only updated once the save succeeded. change returning nil, nil means nothing changed.
func (s *ChallengeStore) mutate(ctx context.Context, op string, change func([]entity.Challenge) ([]entity.Challenge, error)) error {
	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return err
	}
	defer release()
	ctx = context.WithoutCancel(ctx)

	s.mu.RLock()
	next, err := change(slices.Clone(s.challenges))
	s.mu.RUnlock()
	if errors.Is(err, errorvalues.ErrValidation) {
		s.mu.Lock()
		s.state = Idle
		s.mu.Unlock()
		return err
	}
	if err != nil {
		return s.fail(op, err)
	}
	if next != nil {
		if err := s.persistence.SaveChallenges(ctx, next); err != nil {
			return s.fail(op, err)
		}
	}

	s.mu.Lock()
	if next != nil {
		s.challenges = next
	}
	s.state = Idle
	snapshot := Snapshot[entity.Challenge]{State: Idle, Items: slices.Clone(s.challenges)}
	s.mu.Unlock()
	s.subs.publish(snapshot)
	return nil
}

// clearEditing leaves edit mode if the store still edits id, "" matches create mode
func (s *ChallengeStore) clearEditing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if (id == "" && s.editing == nil) || (s.editing != nil && s.editing.ID == id) {
		s.editing = nil
		s.draft = NewChallengeDraft()
	}
}

func indexOfChallenge(challenges []entity.Challenge, id string) int {
	return slices.IndexFunc(challenges, func(c entity.Challenge) bool { return c.ID == id })
}
