package opt

// Opt holds a value of T or nothing. The zero value is none.
type Opt[T any] struct {
	value   T
	present bool
	nilInit bool
}

// Some wraps v. If v is a nil-like value the result is none, marked so that
// Unwrap reports UnwrapNilInit rather than a generic absence.
func Some[T any](v T) Opt[T] {
	if IsNil(v) {
		return Opt[T]{nilInit: true}
	}
	return Opt[T]{value: v, present: true}
}

// None returns an empty Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// FromPtr dereferences p into an Opt, or none if p is nil.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns true if the Opt holds a value.
func (o Opt[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Opt is empty.
func (o Opt[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value, or *UnwrapError when the Opt is none.
func (o Opt[T]) Unwrap() (T, error) {
	if o.present {
		return o.value, nil
	}

	var zero T
	if o.nilInit {
		return zero, &UnwrapError{Reason: UnwrapNilInit}
	}
	return zero, &UnwrapError{Reason: UnwrapNone}
}

// MustUnwrap returns the value or panics with the Unwrap error.
func (o Opt[T]) MustUnwrap() T {
	v, err := o.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// UnwrapOr returns the value if present, otherwise def.
func (o Opt[T]) UnwrapOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// UnwrapOrZero returns the value if present, otherwise the zero value of T.
func (o Opt[T]) UnwrapOrZero() T {
	return o.value
}

// Map transforms the present value into an Opt[Out]; none maps to none.
func Map[In, Out any](o Opt[In], onSome func(In) Out) Opt[Out] {
	if !o.present {
		return Opt[Out]{nilInit: o.nilInit}
	}
	return Some(onSome(o.value))
}

// Cast converts the element type of o to Out. A failed runtime cast degrades
// to none instead of failing, unlike the unchecked element cast in package
// anyof.
func Cast[Out, In any](o Opt[In]) Opt[Out] {
	if !o.present {
		return Opt[Out]{nilInit: o.nilInit}
	}

	v, ok := any(o.value).(Out)
	if !ok {
		return None[Out]()
	}
	return Some(v)
}
