package store

import (
	"context"
	"slices"

	"github.com/limbo/fitfusion/pkg/validation"
)

type remoteCollection[T, D any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) (*T, error)
	Update(ctx context.Context, id string, patch D) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Snapshot is a copy of a store collection taken after an operation settled
type Snapshot[T any] struct {
	State State
	Items []T
}

// remoteStore keeps a server backed collection. The collection is only ever
// replaced by a fresh list from the server, never patched locally.
type remoteStore[T, D any] struct {
	core[Snapshot[T]]

	remote  remoteCollection[T, D]
	idOf    func(T) string
	draftOf func(T) D

	items   []T
	editing *T
	draft   D
}

func (s *remoteStore[T, D]) setup(remote remoteCollection[T, D], idOf func(T) string, draftOf func(T) D, o options, name string) {
	s.initCore(o.logger, name)
	s.remote = remote
	s.idOf = idOf
	s.draftOf = draftOf
	s.items = []T{}
}

func (s *remoteStore[T, D]) refresh(ctx context.Context) error {
	release, err := s.begin(ctx, Fetching)
	if err != nil {
		return err
	}
	defer release()
	return s.reload(context.WithoutCancel(ctx), "refresh")
}

// reload must be called with the gate held
func (s *remoteStore[T, D]) reload(ctx context.Context, op string) error {
	items, err := s.remote.List(ctx)
	if err != nil {
		return s.fail(op, err)
	}
	if items == nil {
		items = []T{}
	}
	s.mu.Lock()
	s.items = items
	s.state = Idle
	snapshot := Snapshot[T]{State: Idle, Items: slices.Clone(items)}
	s.mu.Unlock()
	s.subs.publish(snapshot)
	return nil
}

func (s *remoteStore[T, D]) setEditing(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item == nil {
		s.editing = nil
		var zero D
		s.draft = zero
		return
	}
	cp := *item
	s.editing = &cp
	s.draft = s.draftOf(cp)
}

func (s *remoteStore[T, D]) editingItem() *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editing == nil {
		return nil
	}
	cp := *s.editing
	return &cp
}

func (s *remoteStore[T, D]) currentDraft() D {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// submit updates the entity under edit, or creates one when not editing.
// The draft is kept until the call succeeds.
func (s *remoteStore[T, D]) submit(ctx context.Context, draft D) error {
	s.mu.Lock()
	s.draft = draft
	var id string
	editing := s.editing != nil
	if editing {
		id = s.idOf(*s.editing)
	}
	s.mu.Unlock()

	if err := validation.Struct(draft); err != nil {
		return err
	}

	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return err
	}
	defer release()

	callCtx := context.WithoutCancel(ctx)
	if editing {
		_, err = s.remote.Update(callCtx, id, draft)
	} else {
		_, err = s.remote.Create(callCtx, draft)
	}
	if err != nil {
		return s.fail("submit", err)
	}

	s.mu.Lock()
	// the user may have switched to another entity while the call was queued
	if (!editing && s.editing == nil) || (editing && s.editing != nil && s.idOf(*s.editing) == id) {
		s.editing = nil
		var zero D
		s.draft = zero
	}
	s.mu.Unlock()
	return s.reload(callCtx, "submit")
}

func (s *remoteStore[T, D]) update(ctx context.Context, id string, patch D) error {
	if err := validation.Struct(patch); err != nil {
		return err
	}
	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return err
	}
	defer release()

	callCtx := context.WithoutCancel(ctx)
	if _, err := s.remote.Update(callCtx, id, patch); err != nil {
		return s.fail("update", err)
	}
	return s.reload(callCtx, "update")
}

func (s *remoteStore[T, D]) remove(ctx context.Context, id string, confirm Confirm) (bool, error) {
	if confirm == nil || !confirm() {
		return false, nil
	}
	release, err := s.begin(ctx, Mutating)
	if err != nil {
		return false, err
	}
	defer release()

	callCtx := context.WithoutCancel(ctx)
	if err := s.remote.Delete(callCtx, id); err != nil {
		return false, s.fail("remove", err)
	}
	s.mu.Lock()
	if s.editing != nil && s.idOf(*s.editing) == id {
		s.editing = nil
		var zero D
		s.draft = zero
	}
	s.mu.Unlock()
	return true, s.reload(callCtx, "remove")
}

func (s *remoteStore[T, D]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *remoteStore[T, D]) find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
