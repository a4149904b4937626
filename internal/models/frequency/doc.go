// Package frequency implements the frequency-calibration model.
//
// The base frequency is either Base itself or its reciprocal. The time delta
// handed to Compute is validated but never scales the result:
//
//   - Strict: the delta must be > 0.
//   - Permissive: the delta must be >= 0.
package frequency
