// Package query provides sequence-style operations over anyof.Any values,
// implemented purely in terms of the container's public contract (Values,
// the cardinality queries, and Add). It never reaches into container
// internals.
//
// Key operations:
// - Map/Filter: produce a new container from an existing one
// - Fold: reduce the values to a scalar
// - First: find a value, returning an opt.Opt[T]
// - All/AnyOf: predicate queries
// - Collect: drain an iterator into a container
// - GroupBy: bucket values into a RefMap keyed by a derived key
package query
