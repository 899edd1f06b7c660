package allocator

import "fmt"

// Code identifies the class of failure behind an Error, mirroring the
// teacher's ErrorCode enum in region_memory.go.
type Code int

const (
	// ErrInvalidSize is returned when Allocate is called with size 0.
	ErrInvalidSize Code = iota

	// ErrInvalidPointer is returned when Release is called with a nil
	// pointer, or with a pointer that does not correspond to a live
	// allocation (including a double release).
	ErrInvalidPointer

	// ErrOutOfMemory is returned when neither the buddy engine nor the
	// large-object fallback could satisfy a request.
	ErrOutOfMemory

	// ErrOSFailure is returned when the OS memory gateway rejects a
	// reservation or a return, and when Init is called on an allocator that
	// is already initialized or Destroy on one that is not.
	ErrOSFailure
)

// String renders the error code the way region_memory.go's ErrorCode.String
// renders its codes.
func (c Code) String() string {
	switch c {
	case ErrInvalidSize:
		return "InvalidSize"
	case ErrInvalidPointer:
		return "InvalidPointer"
	case ErrOutOfMemory:
		return "OutOfMemory"
	case ErrOSFailure:
		return "OSFailure"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error is the error type returned from every Init, Destroy, Allocate and
// Release failure (New and NewConfig report an invalid configuration with a
// plain fmt error instead). Op names
// the failing operation (e.g. "Allocate", "buddy.release") so callers and
// tests can tell which path rejected the call.
type Error struct {
	Op      string
	Message string
	Code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("allocator: %s: %s: %s", e.Op, e.Code, e.Message)
}

// Is reports whether target is an *Error with the same Code, so callers can
// use errors.Is(err, &Error{Code: ErrOutOfMemory}) to disambiguate failures.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == t.Code
}

func newError(op string, code Code, format string, args ...any) *Error {
	return &Error{Op: op, Code: code, Message: fmt.Sprintf(format, args...)}
}
