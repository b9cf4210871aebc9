package hooks

import (
	"context"
	"errors"
	"log/slog"

	"github.com/next-trace/scg-hooks/adapters/taskgroup"
	herr "github.com/next-trace/scg-hooks/contract/errors"
	chook "github.com/next-trace/scg-hooks/contract/hook"
)

// Middleware wraps handler execution. Middlewares are executed in
// registration order: the first registered runs outermost.
type Middleware func(next chook.Handler) chook.Handler

// Dispatcher fans an event out to every handler registered for its name,
// running all of them concurrently under one structured scope. The call does
// not return until every launched handler has completed, failed, or been
// cancelled and unwound.
//
// Dispatcher is concurrency-safe; independent Dispatch calls are fully
// independent and may interleave arbitrarily.
type Dispatcher struct {
	reg    *Registry
	scope  chook.Scope
	mw     []Middleware
	logger *slog.Logger
}

// Ensure Dispatcher implements the contract.
var _ chook.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher constructs a Dispatcher over reg. Without options it runs on
// the taskgroup scope with unbounded concurrency and does not log.
func NewDispatcher(reg *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{reg: reg}
	for _, o := range opts {
		o(d)
	}

	if d.scope == nil {
		d.scope = taskgroup.New()
	}

	return d
}

// Dispatch runs all handlers registered for name with payload.
//
// With zero handlers it returns immediately with a zero Outcome and nil
// error. On success the Outcome carries per-handler results in registration
// order. When any handler fails, all still-running siblings of this dispatch
// are cancelled, Dispatch waits for them to unwind, and the error is a
// *errors.DispatchError aggregating every failure in registration order.
// Handlers that merely observed the sibling cancellation are not counted as
// failures; a handler that fails with anything else while unwinding is.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, payload any) (chook.Outcome, error) {
	entries := d.reg.snapshot(name)
	if len(entries) == 0 {
		d.debug(ctx, "dispatch: no handlers", "name", name)
		return chook.Outcome{}, nil
	}

	results := make([]any, len(entries))
	units := make([]chook.Unit, len(entries))

	for i, e := range entries {
		h := e.h
		for j := len(d.mw) - 1; j >= 0; j-- {
			h = d.mw[j](h)
		}

		units[i] = func(uctx context.Context) error {
			v, err := h(uctx, payload)
			if err != nil {
				return err
			}

			results[i] = v

			return nil
		}
	}

	errs := d.scope.Run(ctx, units)

	if failures := d.collect(ctx, name, entries, errs); len(failures) > 0 {
		d.debug(ctx, "dispatch: failed", "name", name, "handlers", len(entries), "failures", len(failures))
		return chook.Outcome{Handlers: len(entries)}, &herr.DispatchError{Name: name, Failures: failures}
	}

	d.debug(ctx, "dispatch: completed", "name", name, "handlers", len(entries))

	return chook.Outcome{Handlers: len(entries), Results: results}, nil
}

// collect turns index-aligned unit errors into registration-ordered handler
// failures. A bare cancellation with a live parent context is the expected
// unwind signal of a sibling and is dropped; everything else is reported.
func (d *Dispatcher) collect(ctx context.Context, name string, entries []entry, errs []error) []*herr.HandlerError {
	var failures, unwound []*herr.HandlerError

	for i, err := range errs {
		if err == nil {
			continue
		}

		he := &herr.HandlerError{Name: name, ID: entries[i].id, Position: i, Err: err}
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			unwound = append(unwound, he)
			continue
		}

		failures = append(failures, he)
	}

	// Every error was a bare cancellation without a cancelled caller
	// context: some handler returned the signal on its own. Report them
	// rather than swallowing the whole failure.
	if len(failures) == 0 {
		failures = unwound
	}

	return failures
}

func (d *Dispatcher) debug(ctx context.Context, msg string, args ...any) {
	if d.logger != nil {
		d.logger.DebugContext(ctx, msg, args...)
	}
}
