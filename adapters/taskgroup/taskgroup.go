// Package taskgroup implements the hook.Scope capability on top of
// golang.org/x/sync/errgroup. It is the default backend used by the core.
package taskgroup

import (
	"context"

	"golang.org/x/sync/errgroup"

	chook "github.com/next-trace/scg-hooks/contract/hook"
)

// Scope runs units through one errgroup: the first unit failure cancels the
// group context handed to every sibling, and Run returns only after all units
// have finished, cancelled or not.
type Scope struct {
	limit int
}

// Ensure Scope implements the contract.
var _ chook.Scope = (*Scope)(nil)

// New creates a Scope with unbounded concurrency.
func New() *Scope { return &Scope{} }

// WithLimit creates a Scope that runs at most n units at a time. Units beyond
// the limit wait their turn; a failure still cancels the ones not yet started.
func WithLimit(n int) *Scope { return &Scope{limit: n} }

func (s *Scope) Run(ctx context.Context, units []chook.Unit) []error {
	errs := make([]error, len(units))

	g, gctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}

	for i, u := range units {
		g.Go(func() error {
			// each unit writes only its own slot
			errs[i] = u(gctx)
			return errs[i]
		})
	}

	_ = g.Wait() // per-unit errors already recorded

	return errs
}
