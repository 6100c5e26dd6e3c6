package selection

import "errors"

// Sentinel errors for contract violations. Both are programmer errors the
// host is expected to prevent by construction.
var (
	ErrInvalidArgument = errors.New("selection: invalid argument")
	ErrOutOfRange      = errors.New("selection: index out of range")
)

// IsInvalidArgument checks if err is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsOutOfRange checks if err is an out-of-range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
