// Package pfold provides a parallel fold over randomly-divisible sequences.
// While Go is primarily designed for concurrent programming, it is also usable
// to some extent for parallel programming, and this library turns an otherwise
// sequential accumulation into a parallel one, with the goal to improve
// performance without changing the result.
//
// A fold is split into a fixed number of contiguous, equally sized ranges,
// decided once up front. Each range is reduced on its own goroutine, except
// for the last one which is reduced on the calling goroutine. Once every
// goroutine has terminated, the partial results are combined with the initial
// value strictly in range order, so the final result equals a sequential fold
// whenever the combine operation is associative.
//
// Pfold provides the following subpackages:
//
// pfold/parallel provides Accumulate, Fold, Sum and their error-returning
// variants.
//
// pfold/sequential provides sequential implementations of all functions from
// pfold/parallel, for testing and debugging purposes.
//
// pfold/config loads the configuration of the pfold command.
//
// There is no work-stealing and no dynamic chunking. If the work per element
// is very uneven, a parallel fold with static partitioning will not balance
// it.
package pfold
