// Package parallel provides a parallel fold over randomly-divisible
// sequences.
//
// All functions of this package divide the sequence into
// pfold.NumWorkers(length, hint) contiguous ranges as computed by
// pfold.Partition. Each range except the last one is folded in its own
// goroutine, and the last range is folded in the invoking goroutine. The
// functions return only when all goroutines have terminated, after which the
// partial results are combined with the initial value from left to right.
//
// The combine function must be associative for the result to be equal to
// the result of the corresponding function in package sequential. It does not
// need to be commutative.
package parallel

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/exascience/pfold"
	"github.com/exascience/pfold/internal"
)

// spawn starts a worker goroutine in g.
var spawn = func(g *errgroup.Group, f func() error) { g.Go(f) }

// Fold receives a sequence, an initial value, an identity value, and a combine
// function, and folds the elements of the sequence into the initial value in
// parallel.
//
// Each worker folds its range starting from identity, which must be a neutral
// element of combine (0 for addition, 1 for multiplication, the empty string
// for concatenation, and so on). The partial results are then folded into
// init in range order. If the sequence is empty, Fold returns init without
// starting any goroutines.
//
// If one or more workers panic, the corresponding goroutines recover the
// panics, and Fold eventually panics with the left-most recovered panic value,
// after all workers have terminated.
//
// Fold panics if combine is nil, or if the worker count hint is negative.
func Fold[T any](
	seq pfold.Sequence[T],
	init, identity T,
	combine func(x, y T) T,
	opts ...Option,
) T {
	if combine == nil {
		panic(fmt.Errorf("%w: combine function", pfold.ErrUndefined))
	}
	o := newOptions(opts)
	ranges := o.partition(seq.Len())
	if len(ranges) == 0 {
		return init
	}
	partials := make([]T, len(ranges))
	panics := make([]interface{}, len(ranges))
	last := len(ranges) - 1
	var g errgroup.Group
	for i, r := range ranges[:last] {
		spawn(&g, func() error {
			defer func() {
				panics[i] = internal.WrapPanic(recover())
			}()
			partials[i] = internal.FoldRange(seq, r, identity, combine)
			return nil
		})
	}
	func() {
		defer func() {
			panics[last] = internal.WrapPanic(recover())
		}()
		partials[last] = internal.FoldRange(seq, ranges[last], identity, combine)
	}()
	_ = g.Wait() // workers only fail by panicking
	for i, p := range panics {
		if p != nil {
			err, _ := p.(error)
			o.logger.Error(err, "worker panicked", "range", ranges[i])
			panic(p)
		}
	}
	return internal.FoldRange[T](pfold.Slice[T](partials), pfold.Range{High: len(partials)}, init, combine)
}

// Accumulate is like Fold, using the zero value of T as the identity value.
func Accumulate[T any](
	seq pfold.Sequence[T],
	init T,
	combine func(x, y T) T,
	opts ...Option,
) T {
	var zero T
	return Fold(seq, init, zero, combine, opts...)
}

// AccumulateSlice is like Accumulate, but receives a slice.
func AccumulateSlice[T any](
	s []T,
	init T,
	combine func(x, y T) T,
	opts ...Option,
) T {
	return Accumulate[T](pfold.Slice[T](s), init, combine, opts...)
}

// Sum adds the elements of the sequence to init in parallel.
func Sum[T pfold.Addable](seq pfold.Sequence[T], init T, opts ...Option) T {
	var zero T
	return Fold(seq, init, zero, func(x, y T) T { return x + y }, opts...)
}

// ErrFold is like Fold, except that the combine function may fail.
//
// A worker stops folding its range at the first error. ErrFold returns only
// when all workers have terminated. If any of them failed, ErrFold returns the
// zero value of T and the errors of all failed workers in range order, each
// wrapping pfold.ErrWorker. If combining the partial results fails, the error
// wraps pfold.ErrCombine.
//
// Panics are handled as in Fold.
func ErrFold[T any](
	seq pfold.Sequence[T],
	init, identity T,
	combine func(x, y T) (T, error),
	opts ...Option,
) (result T, err error) {
	if combine == nil {
		panic(fmt.Errorf("%w: combine function", pfold.ErrUndefined))
	}
	o := newOptions(opts)
	ranges := o.partition(seq.Len())
	if len(ranges) == 0 {
		return init, nil
	}
	partials := make([]T, len(ranges))
	errs := make([]error, len(ranges))
	panics := make([]interface{}, len(ranges))
	last := len(ranges) - 1
	var g errgroup.Group
	for i, r := range ranges[:last] {
		spawn(&g, func() error {
			defer func() {
				panics[i] = internal.WrapPanic(recover())
			}()
			partials[i], errs[i] = internal.ErrFoldRange(seq, r, identity, combine)
			return errs[i]
		})
	}
	func() {
		defer func() {
			panics[last] = internal.WrapPanic(recover())
		}()
		partials[last], errs[last] = internal.ErrFoldRange(seq, ranges[last], identity, combine)
	}()
	groupErr := g.Wait()
	for i, p := range panics {
		if p != nil {
			err, _ := p.(error)
			o.logger.Error(err, "worker panicked", "range", ranges[i])
			panic(p)
		}
	}
	if groupErr != nil || errs[last] != nil {
		var merr *multierror.Error
		for i, e := range errs {
			if e != nil {
				o.logger.Error(e, "worker failed", "range", ranges[i])
				merr = multierror.Append(merr, fmt.Errorf("%w %v: %w", pfold.ErrWorker, ranges[i], e))
			}
		}
		return result, merr.ErrorOrNil()
	}
	combined, err := internal.ErrFoldRange[T](pfold.Slice[T](partials), pfold.Range{High: len(partials)}, init, combine)
	if err != nil {
		return result, fmt.Errorf("%w: %w", pfold.ErrCombine, err)
	}
	return combined, nil
}

// ErrAccumulate is like ErrFold, using the zero value of T as the identity
// value.
func ErrAccumulate[T any](
	seq pfold.Sequence[T],
	init T,
	combine func(x, y T) (T, error),
	opts ...Option,
) (T, error) {
	var zero T
	return ErrFold(seq, init, zero, combine, opts...)
}
