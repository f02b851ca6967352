package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/libanvl/opt/pkg/opt"
)

// Result holds either a success value of T or an error, never both.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// Success returns a successful Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail returns a failed Result holding err.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of lifts a conventional (T, error) return into a Result.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Value returns the success value.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error if the operation failed.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess returns true if the operation succeeded.
func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true if the operation failed.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt returns the creation time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id returns the identity stamp.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Ok returns the success value as an Opt; none on failure.
func (r Result[T]) Ok() opt.Opt[T] {
	if !r.isSuccess {
		return opt.None[T]()
	}
	return opt.Some(r.value)
}

// Map transforms the success value to a new value, carrying a failure
// through unchanged.
func Map[In, Out any](r Result[In], onSuccess func(In) Out) Result[Out] {
	if !r.isSuccess {
		return Fail[Out](r.err)
	}
	return Success(onSuccess(r.value))
}

// Switch composes a function that already returns a Result[Out].
func Switch[In, Out any](r Result[In], onSuccess func(In) Result[Out]) Result[Out] {
	if !r.isSuccess {
		return Fail[Out](r.err)
	}
	return onSuccess(r.value)
}

// Finally collapses the Result to a final value via handlers.
func Finally[In, Out any](r Result[In], onSuccess func(In) Out, onFailure func(error) Out) Out {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
