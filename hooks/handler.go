package hooks

import (
	"context"
	"fmt"

	herr "github.com/next-trace/scg-hooks/contract/errors"
	chook "github.com/next-trace/scg-hooks/contract/hook"
)

// HandlerOf adapts a typed handler function to the untyped hook.Handler. A
// payload of a different type fails the handler with ErrPayloadTypeMismatch.
func HandlerOf[P any](fn func(ctx context.Context, payload P) (any, error)) chook.Handler {
	return func(ctx context.Context, payload any) (any, error) {
		p, ok := payload.(P)
		if !ok {
			return nil, fmt.Errorf("payload %T: %w", payload, herr.ErrPayloadTypeMismatch)
		}

		return fn(ctx, p)
	}
}

// EffectOf adapts a typed, result-less handler function to hook.Handler.
func EffectOf[P any](fn func(ctx context.Context, payload P) error) chook.Handler {
	return HandlerOf(func(ctx context.Context, p P) (any, error) {
		return nil, fn(ctx, p)
	})
}
