package hook

import "context"

// Unit is one independently scheduled, independently failing piece of
// concurrent work inside a Scope.
type Unit func(ctx context.Context) error

// Scope is the single concurrency capability the dispatcher consumes: run all
// units concurrently as one bounded region, cancel the region's context as
// soon as any unit fails, and return only after every unit has finished.
//
// Library users may provide an implementation mapped to their runtime of
// choice; the dispatcher's correctness must not depend on which backend
// satisfies the contract.
type Scope interface {
	// Run executes all units and blocks until each has reached a terminal
	// state. The returned slice is index-aligned with units: errs[i] is unit
	// i's error, nil for units that completed. A unit cancelled after a
	// sibling's failure typically reports the context's cancellation error.
	Run(ctx context.Context, units []Unit) []error
}
