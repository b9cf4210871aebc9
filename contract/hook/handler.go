package hook

import "context"

// Handler is one registered unit of hook work. It receives the payload the
// event was fired with, may suspend on ctx-aware waits, and returns its result.
// Returning a non-nil error fails the dispatch it runs under and requests
// cancellation of its sibling handlers.
//
// Implementations must be safe for concurrent use by multiple goroutines: the
// same handler may run in several dispatches at once.
type Handler func(ctx context.Context, payload any) (any, error)

// Effect adapts a result-less function to a Handler. Useful for hooks that
// only perform side effects.
func Effect(fn func(ctx context.Context, payload any) error) Handler {
	return func(ctx context.Context, payload any) (any, error) {
		return nil, fn(ctx, payload)
	}
}
