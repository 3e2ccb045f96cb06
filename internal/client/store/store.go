// Package store is the client's state container.
//
// State is split into three slices (Session, Catalog, Categories). Every
// change goes through an Action whose Reduce method is a pure function of the
// previous State: it returns the next State plus the side effects the change
// asks for (persisting or clearing the durable session copy). The Store applies
// the new State atomically and hands the effects to an EffectRunner, so the
// reducers themselves never touch storage and stay trivially testable.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is an immutable snapshot. Callers must not mutate the slices it
// holds; reducers always build new ones.
type State struct {
	Session    Session
	Catalog    Catalog
	Categories Categories
}

// Initial returns the state at process start.
func Initial() State {
	return State{Catalog: NewCatalog()}
}

// Action is a state transition.
type Action interface {
	Reduce(s State) (State, []Effect)
}

// EffectKind enumerates side effects reducers may request.
type EffectKind int

const (
	// PersistSession writes Token and Email to durable storage.
	PersistSession EffectKind = iota + 1
	// ClearSession removes the durable session keys.
	ClearSession
)

func (k EffectKind) String() string {
	switch k {
	case PersistSession:
		return "persist-session"
	case ClearSession:
		return "clear-session"
	default:
		return fmt.Sprintf("effect(%d)", int(k))
	}
}

// Effect is a declarative side-effect intent.
type Effect struct {
	Kind  EffectKind
	Token string
	Email string
}

// EffectRunner executes effects. Implementations own all storage access.
type EffectRunner interface {
	Run(ctx context.Context, e Effect) error
}

// EffectFunc adapts a function to EffectRunner.
type EffectFunc func(ctx context.Context, e Effect) error

func (f EffectFunc) Run(ctx context.Context, e Effect) error { return f(ctx, e) }

// Store owns the current State. It is safe for concurrent use; each Dispatch
// is atomic and effects run in dispatch order.
type Store struct {
	mu      sync.RWMutex
	state   State
	effects EffectRunner

	// Effects run outside mu in ticket order: a ticket is drawn while the
	// action is reduced and served once every earlier ticket is done.
	effMu   sync.Mutex
	effCond *sync.Cond
	issued  uint64
	served  uint64
}

// New creates a Store at the initial state. runner may be nil, in which case
// effects are dropped (no durable storage available).
func New(runner EffectRunner) *Store {
	s := &Store{state: Initial(), effects: runner}
	s.effCond = sync.NewCond(&s.effMu)
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the session token, so the Store can back the API client's
// bearer credential.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Session.Token
}

// Dispatch applies a and runs the effects it produced. The new state is
// returned even when an effect fails; the durable copy then lags behind
// until the next successful write.
func (s *Store) Dispatch(ctx context.Context, a Action) (State, error) {
	s.mu.Lock()
	next, effects := a.Reduce(s.state)
	s.state = next

	if s.effects == nil || len(effects) == 0 {
		s.mu.Unlock()
		return next, nil
	}

	ticket := s.issued
	s.issued++
	s.mu.Unlock()

	s.effMu.Lock()
	defer s.effMu.Unlock()
	for s.served != ticket {
		s.effCond.Wait()
	}
	defer func() {
		s.served++
		s.effCond.Broadcast()
	}()

	var errs []error
	for _, e := range effects {
		if err := s.effects.Run(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Kind, err))
		}
	}
	return next, errors.Join(errs...)
}
