package metrics

import (
	"errors"
)

// Sentinel kinds for metrics registration and observation failures.
var (
	ErrObserveFailed = errors.New("metrics observe failed")
)
