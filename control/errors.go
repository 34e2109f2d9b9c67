package control

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel for argument-validation failures at
// the API boundary (non-positive filter_width/depth_limit/nodes_reached,
// or a workers value other than -1 or positive). Callers should use
// errors.Is(err, ErrInvalidArgument) rather than string matching.
var ErrInvalidArgument = errors.New("control: invalid argument")

// ValidatePositive returns ErrInvalidArgument, naming param, if v is not
// a positive integer.
func ValidatePositive(param string, v int) error {
	if v < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidArgument, param, v)
	}
	return nil
}

// ValidateWorkers returns ErrInvalidArgument unless workers is -1 (meaning
// "use hardware thread count") or a positive integer.
func ValidateWorkers(workers int) error {
	if workers == -1 || workers > 0 {
		return nil
	}
	return fmt.Errorf("%w: workers must be -1 or positive, got %d", ErrInvalidArgument, workers)
}
