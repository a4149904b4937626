package types

import (
	"time"

	"github.com/google/uuid"
)

// TransactionReport is produced once per run and is read-only afterwards.
// Samples are in index order; Failures hold the indices that were skipped
// because a model failed.
type TransactionReport struct {
	ID        uuid.UUID       `json:"id"`
	Profile   ProfileName     `json:"profile"`
	Sender    string          `json:"sender"`
	Receiver  string          `json:"receiver"`
	Amount    int64           `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Samples   []QuantumSample `json:"samples"`
	Failures  []SampleFailure `json:"failures,omitempty"`
}

// Indices returns the index of every sample, in order.
func (r TransactionReport) Indices() []int {
	out := make([]int, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Index
	}
	return out
}
