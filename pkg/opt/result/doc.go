// Package result provides Result[T], a value-or-error wrapper for fallible
// operations. Every Result is stamped with an id and a UTC creation time so
// outcomes can be correlated across a pipeline.
//
// Highlights:
// - Success/Fail/Of: construct a Result (Of lifts a (T, error) return)
// - Value/Err/IsSuccess/IsFailure: inspect the outcome
// - Ok: bridge the success value to an opt.Opt[T]
// - Map/Switch/Finally: compose result-returning functions
package result
