package reembed

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrDimensionDrift is returned when a batch produces embeddings whose
	// dimension disagrees with the rest of the run.
	ErrDimensionDrift = errors.New("inconsistent embedding dimension")
)
