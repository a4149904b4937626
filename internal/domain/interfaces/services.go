package interfaces

import (
	"time"

	domaintypes "qsvault/internal/domain/types"
)

// Clock is the wall-clock source. Tests inject a stepping clock.
type Clock interface {
	Now() time.Time
}

// ActivationGate guards the runner. Only IsActive is consulted by it.
type ActivationGate interface {
	Activate()
	Deactivate()
	IsActive() bool
}

// TransactionRunner drives the models over the index range and aggregates
// the results into a report.
type TransactionRunner interface {
	Run(sender, receiver string, amount int64) (domaintypes.TransactionReport, error)
}
