package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for inputs outside a model's or the
	// runner's domain: negative magnitudes, non-positive time deltas in the
	// strict profile, non-positive or non-integer amounts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPreconditionFailed is returned when the runner is invoked while the
	// activation gate is inactive.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrSampleCompute classifies a failure while computing one index.
	// It never escapes a run; see SampleFailure.
	ErrSampleCompute = errors.New("sample compute failure")
)

// SampleFailure records why a single index was skipped during a run.
type SampleFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// NewSampleFailure wraps err for index.
func NewSampleFailure(index int, err error) SampleFailure {
	reason := "unknown"
	if err != nil {
		reason = err.Error()
	}
	return SampleFailure{Index: index, Reason: reason, Err: err}
}

func (f SampleFailure) Error() string {
	return fmt.Sprintf("sample compute failure index=%d: %s", f.Index, f.Reason)
}

func (f SampleFailure) Unwrap() error { return f.Err }

// Is reports ErrSampleCompute as a match so callers can classify failures
// without a type assertion.
func (f SampleFailure) Is(target error) bool { return target == ErrSampleCompute }
