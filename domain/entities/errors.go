package entities

import "errors"

// Errors returned by drivers and controls. Drivers wrap their native errors
// with these so callers can use errors.Is regardless of the backend.
var (
	// ErrNotFound means no element matched a locator at lookup time
	ErrNotFound = errors.New("element not found")

	// ErrStaleElement means a cached handle no longer points at a live node
	ErrStaleElement = errors.New("stale element reference")

	// ErrPrecondition means the presence guard timed out before an action
	ErrPrecondition = errors.New("precondition failed")

	// ErrTimeout means a wait inside an action (suggestion list) timed out
	ErrTimeout = errors.New("timed out")

	// ErrOptionNotFound means a static dropdown has no option with the given text
	ErrOptionNotFound = errors.New("option not found")

	// ErrNoAttribute means the requested attribute is not set on the element
	ErrNoAttribute = errors.New("attribute not set")

	// ErrValueMismatch means a value read back after input differs from what was typed
	ErrValueMismatch = errors.New("value mismatch")

	// ErrUnexpectedType means a script returned a value of an unexpected type
	ErrUnexpectedType = errors.New("unexpected value type")
)
