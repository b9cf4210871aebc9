package hook

import "context"

// Context is re-exported for convenience in handler signatures.
// It avoids importing context in user packages when referencing hook types.
type Context = context.Context
