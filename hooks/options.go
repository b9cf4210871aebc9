package hooks

import (
	"log/slog"

	chook "github.com/next-trace/scg-hooks/contract/hook"
)

// Option configures a Dispatcher instance.
type Option func(*Dispatcher)

// WithScope selects the concurrency backend handlers run under.
func WithScope(s chook.Scope) Option {
	return func(d *Dispatcher) { d.scope = s }
}

// WithLogger attaches a logger for debug-level dispatch tracing. A nil logger
// disables tracing.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithMiddleware registers dispatch middleware via an option.
func WithMiddleware(mw ...Middleware) Option {
	return func(d *Dispatcher) { d.mw = append(d.mw, mw...) }
}
