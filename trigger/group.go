package trigger

import (
	"context"
	"fmt"
	"sync"

	herr "github.com/next-trace/scg-hooks/contract/errors"
	chook "github.com/next-trace/scg-hooks/contract/hook"
	"github.com/next-trace/scg-hooks/hooks"
)

// Group manages named triggers over one shared registry and dispatcher.
//
// Hooks are keyed by name, not by trigger value, so a hook may be attached to
// a name before its trigger is defined; a trigger defined later picks the
// hook up on its first call.
type Group struct {
	mu       sync.Mutex
	triggers map[string]*Trigger

	reg  *hooks.Registry
	disp *hooks.Dispatcher
}

// NewGroup constructs an empty trigger group.
func NewGroup(opts ...hooks.Option) *Group {
	reg := hooks.NewRegistry()

	return &Group{
		triggers: make(map[string]*Trigger),
		reg:      reg,
		disp:     hooks.NewDispatcher(reg, opts...),
	}
}

// Trigger defines a named trigger around fn. Defining the same name twice
// fails with ErrTriggerExists.
func (g *Group) Trigger(name string, fn Func) (*Trigger, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.triggers[name]; exists {
		return nil, fmt.Errorf("trigger %q: %w", name, herr.ErrTriggerExists)
	}

	t := &Trigger{name: name, fn: fn, reg: g.reg, disp: g.disp}
	g.triggers[name] = t

	return t, nil
}

// On hooks h onto name, whether or not a trigger is defined for it yet.
func (g *Group) On(name string, h chook.Handler) chook.Registration {
	return g.reg.Register(name, h)
}

// Off removes a registration returned by On.
func (g *Group) Off(reg chook.Registration) bool {
	return g.reg.Deregister(reg)
}

// Call fires the named trigger with args. An unknown name fails with
// ErrTriggerNotFound.
func (g *Group) Call(ctx context.Context, name string, args any) (any, error) {
	g.mu.Lock()
	t, ok := g.triggers[name]
	g.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("trigger %q: %w", name, herr.ErrTriggerNotFound)
	}

	return t.Call(ctx, args)
}
