package database

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two "no connection" cases. Handlers match these
// with errors.Is to pick a response message; everything else coming out of
// the gateway is a *BackendError.
var (
	// ErrServiceUnavailable means the elevated-privilege client was never
	// established (missing credentials or a failed startup probe), so writes
	// cannot be accepted.
	ErrServiceUnavailable = errors.New("supabase service client not available")

	// ErrNoReadClient means neither the anonymous nor the service client is
	// available, so reads cannot be served either.
	ErrNoReadClient = errors.New("no database client available")
)

// BackendError wraps a failure returned by the hosted backend itself: a
// rejected write, a failed query, or a write that returned no representation.
// Op names the operation ("insert", "select") for log and response messages.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("supabase %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying client error to errors.Is/As chains.
func (e *BackendError) Unwrap() error {
	return e.Err
}
