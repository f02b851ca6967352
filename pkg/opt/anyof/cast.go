package anyof

// Cast converts each element of a to Out, preserving order and cardinality.
// An empty container casts to an empty Any[Out]. The element cast is
// unchecked: an element that does not hold an Out panics with the runtime's
// type assertion error. This is deliberately harder than opt.Cast, which
// degrades a failed cast to none.
func Cast[Out, In comparable](a Any[In]) Any[Out] {
	switch a.card {
	case CardinalitySingle:
		return Of(any(a.single).(Out))
	case CardinalityMany:
		many := make([]Out, len(a.many))
		for i, v := range a.many {
			many[i] = any(v).(Out)
		}
		return Any[Out]{card: CardinalityMany, many: many}
	default:
		return Empty[Out]()
	}
}
