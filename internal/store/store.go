package store

import (
	"context"
	"errors"

	"github.com/ecofinds/marketplace/internal/domain"
)

// ErrTaskCancelled is returned by DispatchContext when the caller's context
// was done before the transition could be applied
var ErrTaskCancelled = errors.New("transition cancelled")

// Listener observes every applied transition. Listeners run while the store
// lock is held, so they must not dispatch.
type Listener func(action domain.Action, prev, next domain.State)

// Store defines the single entry point for state updates
type Store interface {
	// Dispatch applies the action and returns the resulting state
	Dispatch(action domain.Action) domain.State

	// DispatchContext applies the action unless ctx is already done.
	// The check and the transition happen under the same lock.
	DispatchContext(ctx context.Context, action domain.Action) (domain.State, error)

	// DispatchIf is DispatchContext guarded by cond, which sees the state the
	// action would apply to. The boolean reports whether the action was
	// applied. cond runs under the store lock and must not call the store.
	DispatchIf(ctx context.Context, action domain.Action, cond func(domain.State) bool) (domain.State, bool, error)

	// State returns a snapshot of the current state
	State() domain.State

	// Subscribe registers a listener and returns a function removing it
	Subscribe(l Listener) (unsubscribe func())
}
