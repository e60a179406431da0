package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/exascience/pfold"
)

// FoldRange folds the elements of seq in r into seed, from left to right.
func FoldRange[T any](seq pfold.Sequence[T], r pfold.Range, seed T, combine func(x, y T) T) T {
	result := seed
	for i := r.Low; i < r.High; i++ {
		result = combine(result, seq.At(i))
	}
	return result
}

// ErrFoldRange is like FoldRange, but stops at the first error returned by
// combine, reporting the position at which it occurred.
func ErrFoldRange[T any](seq pfold.Sequence[T], r pfold.Range, seed T, combine func(x, y T) (T, error)) (result T, err error) {
	result = seed
	for i := r.Low; i < r.High; i++ {
		if result, err = combine(result, seq.At(i)); err != nil {
			var zero T
			return zero, fmt.Errorf("position %v: %w", i, err)
		}
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			r := fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
			var re runtime.Error
			if errors.As(err, &re) {
				return runtimeError{r}
			}
			return r
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}
