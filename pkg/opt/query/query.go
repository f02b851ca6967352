package query

import (
	"iter"

	"github.com/libanvl/opt/pkg/opt"
	"github.com/libanvl/opt/pkg/opt/anyof"
)

// Map transforms each value of a into a new container, preserving order.
func Map[In, Out comparable](a anyof.Any[In], onEach func(In) Out) anyof.Any[Out] {
	var out anyof.Any[Out]
	for v := range a.Values() {
		out.Add(onEach(v))
	}
	return out
}

// Filter keeps the values for which keep returns true, preserving order.
func Filter[T comparable](a anyof.Any[T], keep func(T) bool) anyof.Any[T] {
	var out anyof.Any[T]
	for v := range a.Values() {
		if keep(v) {
			out.Add(v)
		}
	}
	return out
}

// Fold reduces the values to a scalar, left to right, starting from seed.
func Fold[T comparable, Acc any](a anyof.Any[T], seed Acc, onEach func(Acc, T) Acc) Acc {
	acc := seed
	for v := range a.Values() {
		acc = onEach(acc, v)
	}
	return acc
}

// First returns the first value matching pred; none if no value matches. A
// nil pred matches every value.
func First[T comparable](a anyof.Any[T], pred func(T) bool) opt.Opt[T] {
	for v := range a.Values() {
		if pred == nil || pred(v) {
			return opt.Some(v)
		}
	}
	return opt.None[T]()
}

// All reports whether pred holds for every value. It holds vacuously for an
// empty container.
func All[T comparable](a anyof.Any[T], pred func(T) bool) bool {
	for v := range a.Values() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// AnyOf reports whether pred holds for at least one value.
func AnyOf[T comparable](a anyof.Any[T], pred func(T) bool) bool {
	for v := range a.Values() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Collect drains seq into a container through the add state machine.
func Collect[T comparable](seq iter.Seq[T]) anyof.Any[T] {
	var out anyof.Any[T]
	if seq == nil {
		return out
	}
	for v := range seq {
		out.Add(v)
	}
	return out
}

// GroupBy buckets the values of a into a RefMap keyed by onEach, preserving
// insertion order within each bucket.
func GroupBy[K comparable, T comparable](a anyof.Any[T], onEach func(T) K) *anyof.RefMap[K, T] {
	m := anyof.NewRefMap[K, T]()
	for v := range a.Values() {
		m.GetOrAddRef(onEach(v)).Add(v)
	}
	return m
}
