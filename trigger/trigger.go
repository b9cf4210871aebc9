package trigger

import (
	"context"

	chook "github.com/next-trace/scg-hooks/contract/hook"
	"github.com/next-trace/scg-hooks/hooks"
)

// Func is the unit of work a trigger wraps. Its result is what the trigger's
// hooks observe as payload.
type Func func(ctx context.Context, args any) (any, error)

// Trigger wraps a function so that every successful call fans its result out
// to the hooks attached to the trigger. Hooks run concurrently under the
// dispatcher's scope; the wrapped function itself runs first, inline.
type Trigger struct {
	name string
	fn   Func
	reg  *hooks.Registry
	disp *hooks.Dispatcher
}

// New creates a standalone trigger around fn with its own registry and
// dispatcher. Use a Group to share hooks across several named triggers.
func New(fn Func, opts ...hooks.Option) *Trigger {
	reg := hooks.NewRegistry()

	return &Trigger{
		name: "trigger",
		fn:   fn,
		reg:  reg,
		disp: hooks.NewDispatcher(reg, opts...),
	}
}

// Name returns the trigger's event name.
func (t *Trigger) Name() string { return t.name }

// Hook registers h to run on every successful call of the trigger.
func (t *Trigger) Hook(h chook.Handler) chook.Registration {
	return t.reg.Register(t.name, h)
}

// Unhook removes a registration returned by Hook and reports whether it was
// present.
func (t *Trigger) Unhook(reg chook.Registration) bool {
	return t.reg.Deregister(reg)
}

// Call runs the wrapped function and, if it succeeds, dispatches its result
// to every hook. A function error suppresses the fan-out entirely. The
// function's result is returned alongside any hook dispatch failure, so
// callers keep the result even when a hook failed.
func (t *Trigger) Call(ctx context.Context, args any) (any, error) {
	res, err := t.fn(ctx, args)
	if err != nil {
		return nil, err
	}

	if _, derr := t.disp.Dispatch(ctx, t.name, res); derr != nil {
		return res, derr
	}

	return res, nil
}
