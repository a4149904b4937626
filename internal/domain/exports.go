package domain

import (
	interfaces "qsvault/internal/domain/interfaces"
	types "qsvault/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	StateCode         = types.StateCode
	Fingerprint       = types.Fingerprint
	ProfileName       = types.ProfileName
	PowerResult       = types.PowerResult
	FrequencyResult   = types.FrequencyResult
	FractionResult    = types.FractionResult
	QuantumSample     = types.QuantumSample
	SampleResult      = types.SampleResult
	SampleFailure     = types.SampleFailure
	TransactionReport = types.TransactionReport
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PowerModel        = interfaces.PowerModel
	FrequencyModel    = interfaces.FrequencyModel
	FractionModel     = interfaces.FractionModel
	StateReducer      = interfaces.StateReducer
	Clock             = interfaces.Clock
	ActivationGate    = interfaces.ActivationGate
	TransactionRunner = interfaces.TransactionRunner
	ReportStore       = interfaces.ReportStore
)

// Error sentinels re-exported from the types subpackage.
var (
	ErrInvalidArgument    = types.ErrInvalidArgument
	ErrPreconditionFailed = types.ErrPreconditionFailed
	ErrSampleCompute      = types.ErrSampleCompute
)

// NewSampleFailure wraps err as the failure of one index.
func NewSampleFailure(index int, err error) SampleFailure {
	return types.NewSampleFailure(index, err)
}
