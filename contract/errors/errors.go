package errors

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Error codes for the hook contracts. Keep stable; used across adapters and core.
const (
	ErrCodeDispatchFailed      = "hooks.dispatch_failed"
	ErrCodePayloadTypeMismatch = "hooks.payload_type_mismatch"
	ErrCodeTriggerExists       = "hooks.trigger_exists"
	ErrCodeTriggerNotFound     = "hooks.trigger_not_found"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrDispatchFailed      = Code(ErrCodeDispatchFailed)
	ErrPayloadTypeMismatch = Code(ErrCodePayloadTypeMismatch)
	ErrTriggerExists       = Code(ErrCodeTriggerExists)
	ErrTriggerNotFound     = Code(ErrCodeTriggerNotFound)
)

// HandlerError is one handler's failure within a single dispatch. It carries
// the registration identity so callers can tell apart duplicate registrations
// of an equal handler.
type HandlerError struct {
	// Name is the event name that was dispatched.
	Name string
	// ID is the failing handler's registration identity.
	ID uuid.UUID
	// Position is the handler's index in registration order within the
	// dispatch snapshot.
	Position int
	// Err is the underlying failure.
	Err error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("hook %s[%d]: %v", e.Name, e.Position, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }

// DispatchError aggregates every handler failure from one dispatch, ordered
// by registration position. It is never a short-circuit: failures already in
// flight when cancellation took effect are included, not just the first.
//
// DispatchError matches ErrDispatchFailed under errors.Is and unwraps to the
// individual failures, so errors.Is/errors.As reach the underlying errors.
type DispatchError struct {
	Name     string
	Failures []*HandlerError
}

func (e *DispatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dispatch %s: %d handler(s) failed", e.Name, len(e.Failures))
	for _, f := range e.Failures {
		b.WriteString("\n\t")
		b.WriteString(f.Error())
	}
	return b.String()
}

// Unwrap exposes the individual handler failures as a multi-error.
func (e *DispatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// Is lets errors.Is(err, ErrDispatchFailed) identify aggregate failures
// without inspecting the concrete type.
func (e *DispatchError) Is(target error) bool { return target == ErrDispatchFailed }
