package hook

import "context"

// Registry is a minimal, tech-agnostic interface over the hook registry for
// consumers that want to depend only on contracts.
type Registry interface {
	// Register appends h to the handler set for name, creating the set if
	// absent. It never fails.
	Register(name string, h Handler) Registration

	// Deregister removes the registration identified by reg and reports
	// whether it was present. A second call for the same reg returns false.
	Deregister(reg Registration) bool

	// Snapshot returns the current handler set for name in registration
	// order, or an empty slice if none. The result is a copy unaffected by
	// later registry mutation.
	Snapshot(name string) []Handler
}

// Dispatcher fans an event out to every handler registered for its name.
type Dispatcher interface {
	// Dispatch runs all handlers registered for name concurrently under one
	// scope and returns once every handler has reached a terminal state.
	// Firing a name nobody listens to succeeds with a zero Outcome.
	Dispatch(ctx context.Context, name string, payload any) (Outcome, error)
}

// Outcome reports one completed dispatch.
type Outcome struct {
	// Handlers is the number of handlers in the dispatch snapshot.
	Handlers int
	// Results holds per-handler results in registration order. It is nil when
	// the dispatch failed.
	Results []any
}
