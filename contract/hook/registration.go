package hook

import "github.com/google/uuid"

// Registration identifies one registered handler occurrence. Registering the
// same handler twice yields two distinct Registrations, so each occurrence can
// be removed on its own.
//
// Registration is a value; copies are equally valid for deregistration.
type Registration struct {
	// Name is the event name the handler was registered under.
	Name string
	// ID is unique per registration, not per handler.
	ID uuid.UUID
}
