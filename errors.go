package pfold

import "errors"

var (
	ErrInvalid   = errors.New("invalid")
	ErrUndefined = errors.New("undefined")
	ErrWorker    = errors.New("worker failed")
	ErrCombine   = errors.New("combine failed")
)

// Any returns whether target matches any of the errors err.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}
