// Package sequential provides sequential implementations of the
// functions provided by the parallel package. This is useful for
// testing and debugging.
//
// It is not recommended to use the implementations of this package
// for any other purpose, because a plain loop is simpler for regular
// sequential programs.
package sequential

import (
	"fmt"

	"github.com/exascience/pfold"
	"github.com/exascience/pfold/internal"
)

func whole(length int) pfold.Range {
	if length < 0 {
		panic(fmt.Errorf("%w: length %v", pfold.ErrInvalid, length))
	}
	return pfold.Range{High: length}
}

// Fold receives a sequence, an initial value, an identity value, and
// a combine function, and folds the elements of the sequence into the
// initial value from left to right.
//
// The identity value is not used, and only exists so that Fold has the
// same signature as parallel.Fold.
func Fold[T any](
	seq pfold.Sequence[T],
	init, _ T,
	combine func(x, y T) T,
) T {
	return internal.FoldRange(seq, whole(seq.Len()), init, combine)
}

// Accumulate folds the elements of the sequence into init from left
// to right.
func Accumulate[T any](
	seq pfold.Sequence[T],
	init T,
	combine func(x, y T) T,
) T {
	return internal.FoldRange(seq, whole(seq.Len()), init, combine)
}

// AccumulateSlice is like Accumulate, but receives a slice.
func AccumulateSlice[T any](
	s []T,
	init T,
	combine func(x, y T) T,
) T {
	return Accumulate[T](pfold.Slice[T](s), init, combine)
}

// Sum adds the elements of the sequence to init from left to right.
func Sum[T pfold.Addable](seq pfold.Sequence[T], init T) T {
	return Accumulate(seq, init, func(x, y T) T { return x + y })
}

// ErrFold is like Fold, except that the combine function may fail.
// ErrFold stops at the first error, and returns it wrapped with
// pfold.ErrWorker together with the zero value of T.
func ErrFold[T any](
	seq pfold.Sequence[T],
	init, _ T,
	combine func(x, y T) (T, error),
) (T, error) {
	r := whole(seq.Len())
	result, err := internal.ErrFoldRange(seq, r, init, combine)
	if err != nil {
		return result, fmt.Errorf("%w %v: %w", pfold.ErrWorker, r, err)
	}
	return result, nil
}

// ErrAccumulate is like ErrFold, without an identity value.
func ErrAccumulate[T any](
	seq pfold.Sequence[T],
	init T,
	combine func(x, y T) (T, error),
) (T, error) {
	var zero T
	return ErrFold(seq, init, zero, combine)
}
