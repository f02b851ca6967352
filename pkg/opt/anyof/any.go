package anyof

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"

	"github.com/libanvl/opt/pkg/opt"
)

// Any holds zero, one, or many values of T. The zero value is an empty
// container.
//
// The single slot is meaningful only when card is CardinalitySingle, and the
// many slice is non-nil only when card is CardinalityMany, in which case it
// holds at least two elements.
type Any[T comparable] struct {
	card   Cardinality
	single T
	many   []T
}

// Empty returns a container with no values.
func Empty[T comparable]() Any[T] {
	return Any[T]{}
}

// Of returns a container holding exactly v. It panics with *opt.UnwrapError
// if v is a nil-like value: a single slot never holds nil.
func Of[T comparable](v T) Any[T] {
	single, err := opt.Some(v).Unwrap()
	if err != nil {
		panic(err)
	}
	return Any[T]{card: CardinalitySingle, single: single}
}

// From classifies the given values into a container.
func From[T comparable](vals ...T) Any[T] {
	return FromSlice(vals)
}

// FromSlice classifies s eagerly: zero elements construct an empty container,
// one constructs a single, two or more construct a many backed by a copy of
// s. A nil slice constructs an empty container.
func FromSlice[T comparable](s []T) Any[T] {
	switch len(s) {
	case 0:
		return Empty[T]()
	case 1:
		return Of(s[0])
	default:
		return Any[T]{card: CardinalityMany, many: slices.Clone(s)}
	}
}

// FromSeq drains seq into a container, adding elements one at a time. A nil
// seq constructs an empty container.
func FromSeq[T comparable](seq iter.Seq[T]) Any[T] {
	if seq == nil {
		return Empty[T]()
	}

	var a Any[T]
	for v := range seq {
		a.Add(v)
	}
	return a
}

// IsNone returns true if the container holds no values.
func (a Any[T]) IsNone() bool {
	return a.card == CardinalityNone
}

// IsSome returns true if the container holds at least one value.
func (a Any[T]) IsSome() bool {
	return a.card != CardinalityNone
}

// IsSingle returns true if the container holds exactly one value.
func (a Any[T]) IsSingle() bool {
	return a.card == CardinalitySingle
}

// IsMany returns true if the container holds two or more values.
func (a Any[T]) IsMany() bool {
	return a.card == CardinalityMany
}

// Cardinality returns the current cardinality.
func (a Any[T]) Cardinality() Cardinality {
	return a.card
}

// Count returns the number of values held: 0, 1, or the length of the
// backing slice. It is derived from the current state, never stored.
func (a Any[T]) Count() int {
	switch a.card {
	case CardinalitySingle:
		return 1
	case CardinalityMany:
		return len(a.many)
	default:
		return 0
	}
}

// Single returns the single value as an Opt; none unless the cardinality is
// single.
func (a Any[T]) Single() opt.Opt[T] {
	if a.card != CardinalitySingle {
		return opt.None[T]()
	}
	return opt.Some(a.single)
}

// Many returns a copy of the backing slice as an Opt; none unless the
// cardinality is many.
func (a Any[T]) Many() opt.Opt[[]T] {
	if a.card != CardinalityMany {
		return opt.None[[]T]()
	}
	return opt.Some(slices.Clone(a.many))
}

// ToOpt bridges the container to a possibly-absent slice: none maps to none,
// single to a one-element slice, many to a copy of the backing slice.
func (a Any[T]) ToOpt() opt.Opt[[]T] {
	switch a.card {
	case CardinalitySingle:
		return opt.Some([]T{a.single})
	case CardinalityMany:
		return opt.Some(slices.Clone(a.many))
	default:
		return opt.None[[]T]()
	}
}

// Add appends item, promoting the container as needed: none becomes single,
// single becomes many with a fresh two-element slice, many appends. Insertion
// order is preserved. Adding a nil-like item to an empty container panics
// with *opt.UnwrapError, like Of: a single slot never holds nil.
func (a *Any[T]) Add(item T) {
	switch a.card {
	case CardinalityNone:
		*a = Of(item)
	case CardinalitySingle:
		a.many = []T{a.single, item}
		var zero T
		a.single = zero
		a.card = CardinalityMany
	case CardinalityMany:
		a.many = append(a.many, item)
	}
}

// Remove deletes the first value equal to item, reporting whether one was
// found. A single matching item empties the container; a many dropping to
// one element collapses to single and releases the backing slice. Like Add,
// the collapse panics with *opt.UnwrapError if the surviving element is
// nil-like.
func (a *Any[T]) Remove(item T) bool {
	switch a.card {
	case CardinalitySingle:
		if a.single != item {
			return false
		}
		var zero T
		a.single = zero
		a.card = CardinalityNone
		return true
	case CardinalityMany:
		i := slices.Index(a.many, item)
		if i < 0 {
			return false
		}
		a.many = slices.Delete(a.many, i, i+1)
		if len(a.many) == 1 {
			*a = Of(a.many[0])
		}
		return true
	default:
		return false
	}
}

// Contains reports whether item is held by the container.
func (a Any[T]) Contains(item T) bool {
	switch a.card {
	case CardinalitySingle:
		return a.single == item
	case CardinalityMany:
		return slices.Contains(a.many, item)
	default:
		return false
	}
}

// ToSlice returns the values as a fresh slice, nil when the container is
// empty.
func (a Any[T]) ToSlice() []T {
	switch a.card {
	case CardinalitySingle:
		return []T{a.single}
	case CardinalityMany:
		return slices.Clone(a.many)
	default:
		return nil
	}
}

// Values returns a restartable iterator over the values in insertion order.
// Iterating an empty container yields nothing.
func (a Any[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		switch a.card {
		case CardinalitySingle:
			yield(a.single)
		case CardinalityMany:
			for _, v := range a.many {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Equal reports ordered structural equality: two containers are equal only
// when they have the same cardinality and hold equal values in the same
// order. A single never equals a many, regardless of content.
func (a Any[T]) Equal(b Any[T]) bool {
	if a.card != b.card {
		return false
	}
	switch a.card {
	case CardinalitySingle:
		return a.single == b.single
	case CardinalityMany:
		return slices.Equal(a.many, b.many)
	default:
		return true
	}
}

var anySeed = maphash.MakeSeed()

// Hash returns a content hash consistent with Equal: equal containers hash
// equal within a process. An empty container hashes to a fixed constant, a
// single to its element's hash, a many to an order-sensitive fold over its
// elements. The hash is not stable across processes.
func (a Any[T]) Hash() uint64 {
	switch a.card {
	case CardinalitySingle:
		return maphash.Comparable(anySeed, a.single)
	case CardinalityMany:
		var h maphash.Hash
		h.SetSeed(anySeed)
		for _, v := range a.many {
			maphash.WriteComparable(&h, v)
		}
		return h.Sum64()
	default:
		return maphash.Comparable(anySeed, CardinalityNone)
	}
}

// Clone returns a copy that does not alias the backing slice of a many
// container. Copying an Any by assignment may alias it instead.
func (a Any[T]) Clone() Any[T] {
	a.many = slices.Clone(a.many) // preserves nilness
	return a
}

func (a Any[T]) String() string {
	switch a.card {
	case CardinalitySingle:
		return fmt.Sprintf("%s(%v)", a.card, a.single)
	case CardinalityMany:
		return fmt.Sprintf("%s(%v)", a.card, a.many)
	default:
		return a.card.String()
	}
}
