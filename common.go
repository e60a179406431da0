package pfold

import (
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
)

// DefaultWorkers is the number of workers used when no hint is available.
const DefaultWorkers = 2

type (
	// A Sequence is an ordered, finite collection of elements that supports
	// random access. It must not be modified while a fold over it is in
	// progress.
	Sequence[T any] interface {
		// Len returns the number of elements.
		Len() int
		// At returns the element at position i, with 0 <= i < Len().
		At(i int) T
	}

	// Slice adapts a Go slice to a Sequence.
	Slice[T any] []T

	// A Range is a half-open interval of sequence positions, including Low
	// but excluding High.
	Range struct {
		Low, High int
	}

	// Addable is satisfied by all types that support the + operator.
	Addable interface {
		~uint | ~int | ~uintptr |
			~uint8 | ~uint16 | ~uint32 | ~uint64 |
			~int8 | ~int16 | ~int32 | ~int64 |
			~float32 | ~float64 |
			~complex64 | ~complex128 |
			~string
	}
)

// Len implements Sequence.
func (s Slice[T]) Len() int { return len(s) }

// At implements Sequence.
func (s Slice[T]) At(i int) T { return s[i] }

// Len returns the number of positions covered by the range.
func (r Range) Len() int { return r.High - r.Low }

func (r Range) String() string {
	return fmt.Sprintf("[%v:%v)", r.Low, r.High)
}

/*
NumWorkers determines how many workers fold a sequence of the given length.

The hint is usually the available hardware concurrency. A hint of 0 means
that it is unknown, in which case DefaultWorkers is used. The result never
exceeds length, so that every worker receives at least one element, and is 0
only if length is 0.

NumWorkers panics if length or hint is negative.
*/
func NumWorkers(length, hint int) int {
	if length < 0 {
		panic(fmt.Errorf("%w: length %v", ErrInvalid, length))
	}
	switch {
	case hint == 0:
		hint = DefaultWorkers
	case hint < 0:
		panic(fmt.Errorf("%w: number of workers %v", ErrInvalid, hint))
	}
	if hint > length {
		return length
	}
	return hint
}

/*
Partition divides the positions [0, length) into NumWorkers(length, hint)
contiguous ranges.

Every range except the last one contains exactly length / NumWorkers(length,
hint) positions. The last range absorbs the remainder. The ranges are
returned in order, are never empty, and cover every position exactly once.
Partition returns nil for a length of 0.

Partition is a pure function of its parameters.
*/
func Partition(length, hint int) []Range {
	n := NumWorkers(length, hint)
	if n == 0 {
		return nil
	}
	blockSize := length / n
	ranges := make([]Range, n)
	low := 0
	for i := 0; i < n-1; i++ {
		ranges[i] = Range{Low: low, High: low + blockSize}
		low += blockSize
	}
	ranges[n-1] = Range{Low: low, High: length}
	return ranges
}

var (
	hardwareConcurrencyOnce sync.Once
	hardwareConcurrency     int
)

// HardwareConcurrency returns the number of logical CPUs of the host, or 0 if
// it cannot be determined. The result is suitable as a hint for NumWorkers.
//
// The host is only queried on the first call.
func HardwareConcurrency() int {
	hardwareConcurrencyOnce.Do(func() {
		if n, err := cpu.Counts(true); err == nil && n > 0 {
			hardwareConcurrency = n
		}
	})
	return hardwareConcurrency
}
