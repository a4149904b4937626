package types

import "github.com/shopspring/decimal"

// QuantumSample is one accepted index's full computed result.
type QuantumSample struct {
	Index     int             `json:"index"`
	StateCode StateCode       `json:"state_code"`
	Power     decimal.Decimal `json:"power"`
	Frequency decimal.Decimal `json:"frequency"`
	Fraction  decimal.Decimal `json:"fraction"`
}

// SampleResult is the per-index outcome of a run: either a Sample or a
// Failure, never both.
type SampleResult struct {
	Index   int
	Sample  QuantumSample
	Failure *SampleFailure
}

// OK reports whether the index produced a sample.
func (r SampleResult) OK() bool { return r.Failure == nil }
