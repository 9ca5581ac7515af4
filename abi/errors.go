// Package abi adapts the host's C function table into Go, translating host
// error codes and enums into the core's internal error taxonomy. Every
// side-effect on the game world happens through this layer.
package abi

import "fmt"

// EntityError is a sentinel error from the host's taxonomy (§7). Callers
// compare against these with errors.Is, not string matching.
type EntityError string

func (e EntityError) Error() string { return string(e) }

// The ABI error taxonomy, verbatim from spec.md §7.
const (
	ErrNoSuchEntity        EntityError = "no such entity"
	ErrBufferTooSmall      EntityError = "buffer too small"
	ErrTooLargeInput       EntityError = "input too large"
	ErrArgumentOutOfBounds EntityError = "argument out of bounds"
	ErrNullArgument        EntityError = "null argument"
	ErrPoolExhausted       EntityError = "pool exhausted"
	ErrInvalidName         EntityError = "invalid name"
	ErrRequestDenied       EntityError = "request denied"
)

// CoreError carries a sentinel EntityError plus structured diagnostic
// context (which pool, which handle, which call) for logging, while still
// satisfying errors.Is(err, <sentinel>) via Unwrap — grounded on the
// teacher's TypeError/RangeError/TimeoutError Unwrap-chain pattern.
type CoreError struct {
	Cause  EntityError
	Pool   string
	Handle int32
	Call   string
}

func (e *CoreError) Error() string {
	if e.Pool == "" && e.Handle == 0 && e.Call == "" {
		return string(e.Cause)
	}
	return fmt.Sprintf("%s: pool=%s handle=%d call=%s", e.Cause, e.Pool, e.Handle, e.Call)
}

// Unwrap returns the sentinel EntityError so errors.Is(err, abi.ErrNoSuchEntity)
// works regardless of how much context was attached.
func (e *CoreError) Unwrap() error { return e.Cause }

// Wrap attaches diagnostic context to a sentinel EntityError.
func Wrap(cause EntityError, pool string, handle int32, call string) *CoreError {
	return &CoreError{Cause: cause, Pool: pool, Handle: handle, Call: call}
}
