// Package opt provides Opt[T], a null-free "present or absent" wrapper.
//
// An Opt is either some (holding a value) or none. Wrapping a nil pointer,
// map, slice, func, or interface does not produce a present-nil: Some detects
// the nil and yields a none that remembers it was initialized with nil, so a
// later Unwrap reports that reason instead of a generic absence.
//
// Highlights:
// - Some/None/FromPtr: construct an Opt
// - Get/Unwrap/MustUnwrap/UnwrapOr: read the value out
// - Map: transform the present value (T -> U)
// - Cast: convert the element type, degrading a failed cast to none
//
// Unwrapping a none returns *UnwrapError carrying the reason, so callers can
// tell "never had a value" from "was given nil" without a debugger.
package opt
