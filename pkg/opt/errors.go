package opt

import "fmt"

// UnwrapReason explains why an Opt could not be unwrapped.
type UnwrapReason int

const (
	// UnwrapNone means the Opt was accessed while none.
	UnwrapNone UnwrapReason = iota
	// UnwrapNilInit means the Opt was initialized with a nil value.
	UnwrapNilInit
)

func (r UnwrapReason) String() string {
	switch r {
	case UnwrapNilInit:
		return "initialized with nil"
	default:
		return "accessed while none"
	}
}

// UnwrapError reports an invalid unwrap of a none Opt.
type UnwrapError struct {
	Reason UnwrapReason
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("opt: invalid unwrap: %s", e.Reason)
}
