// Package goroutines implements the hook.Scope capability with plain
// goroutines, a WaitGroup, and context.WithCancelCause. It carries no
// dependencies and is interchangeable with the taskgroup backend.
package goroutines

import (
	"context"
	"sync"

	chook "github.com/next-trace/scg-hooks/contract/hook"
)

// Scope launches every unit on its own goroutine. The first failure cancels
// the shared context with the failing unit's error as cause; Run waits for
// every goroutine regardless.
type Scope struct{}

// Ensure Scope implements the contract.
var _ chook.Scope = (*Scope)(nil)

// New creates a goroutine-backed Scope.
func New() *Scope { return &Scope{} }

func (*Scope) Run(ctx context.Context, units []chook.Unit) []error {
	errs := make([]error, len(units))

	sctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var wg sync.WaitGroup
	for i, u := range units {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := u(sctx); err != nil {
				errs[i] = err
				cancel(err)
			}
		}()
	}

	wg.Wait()

	return errs
}
