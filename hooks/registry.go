package hooks

import (
	"sync"

	"github.com/google/uuid"

	chook "github.com/next-trace/scg-hooks/contract/hook"
)

// entry pairs a handler with its registration identity.
type entry struct {
	id uuid.UUID
	h  chook.Handler
}

// Registry owns the mapping from event name to its ordered handler set.
//
// Registry is concurrency-safe and contains no global state: register,
// deregister, and snapshot may race freely with in-flight dispatches. A
// snapshot is copy-on-read and reflects one consistent point in time.
type Registry struct {
	mu   sync.RWMutex
	sets map[string][]entry
}

// Ensure Registry implements the contract.
var _ chook.Registry = (*Registry)(nil)

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string][]entry)}
}

// Register appends h to the handler set for name, creating the set if absent.
// It never fails. The same handler may be registered any number of times;
// each registration is invoked once per dispatch and is removable on its own
// via the returned Registration.
func (r *Registry) Register(name string, h chook.Handler) chook.Registration {
	id := uuid.New()

	r.mu.Lock()
	r.sets[name] = append(r.sets[name], entry{id: id, h: h})
	r.mu.Unlock()

	return chook.Registration{Name: name, ID: id}
}

// Deregister removes the registration identified by reg and reports whether
// it was present. Removing an unknown or already removed registration is a
// silent no-op returning false, never an error.
func (r *Registry) Deregister(reg chook.Registration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.sets[reg.Name]
	for i, e := range set {
		if e.id != reg.ID {
			continue
		}

		// full slice expression forces a copy so earlier snapshots keep
		// their backing array intact
		r.sets[reg.Name] = append(set[:i:i], set[i+1:]...)
		if len(r.sets[reg.Name]) == 0 {
			delete(r.sets, reg.Name)
		}

		return true
	}

	return false
}

// Snapshot returns the current handler set for name in registration order, or
// an empty slice if none. The result is a copy; subsequent Register and
// Deregister calls do not affect it.
func (r *Registry) Snapshot(name string) []chook.Handler {
	entries := r.snapshot(name)

	hs := make([]chook.Handler, len(entries))
	for i, e := range entries {
		hs[i] = e.h
	}

	return hs
}

// Len reports the number of handlers currently registered for name.
func (r *Registry) Len(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sets[name])
}

// snapshot returns the entries with their registration identity, for
// dispatch-side failure reporting.
func (r *Registry) snapshot(name string) []entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entry(nil), r.sets[name]...)
}
