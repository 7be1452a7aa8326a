package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingView indicates the view is required but not set.
	ErrMissingView = errors.New("execution context: view is required")

	// ErrMissingEngine indicates the selection engine is required but not set.
	ErrMissingEngine = errors.New("execution context: engine is required")
)
