// Package anyof provides Any[T], a container holding zero, one, or many
// values of T without allocating a backing slice for the zero and one cases.
//
// An Any is always in exactly one of three cardinalities: none, single, or
// many. Add and Remove move it between them: adding to a single promotes it
// to many, and removing from a many down to one element collapses it back to
// single and releases the backing slice. A many always holds at least two
// elements.
//
// Key constructs:
// - Empty/Of/From/FromSlice/FromSeq: construct with eager classification
// - Add/Remove: mutate through the state machine
// - Single/Many/ToOpt: optional-value views of the current state
// - Values/ToSlice/Contains: read-only projections
// - Equal/Hash: ordered structural equality and a matching content hash
// - Cast: unchecked element conversion (contrast with opt.Cast)
// - RefMap: a keyed collection of Any values with by-reference mutation
//
// Any has value semantics for the none and single cardinalities. A many
// container owns a slice, so copying one by assignment may alias it until a
// growth reallocates; use Clone for a copy that never aliases.
package anyof
