package vector

import "errors"

var (
	// ErrAllocation reports that backing storage could not be allocated or grown.
	ErrAllocation = errors.New("vector: allocation failed")
	// ErrIndexOutOfRange reports an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
	// ErrNotReady reports use of a vector that is uninitialized or released.
	ErrNotReady = errors.New("vector: not initialized")
	// ErrInvalidConfig reports an inconsistent Config.
	ErrInvalidConfig = errors.New("vector: invalid config")
	// ErrLengthMismatch reports operands of different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")
)
