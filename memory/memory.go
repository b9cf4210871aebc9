package memory

import (
	chook "github.com/next-trace/scg-hooks/contract/hook"
	"github.com/next-trace/scg-hooks/hooks"
)

// New constructs a ready-to-use registry and dispatcher pair wired with the
// default taskgroup scope, returned as contract interfaces. Both views share
// the same underlying registry: handlers registered through the first are
// dispatched by the second.
func New(opts ...hooks.Option) (chook.Registry, chook.Dispatcher) { //nolint:ireturn
	reg := hooks.NewRegistry()
	return reg, hooks.NewDispatcher(reg, opts...)
}
