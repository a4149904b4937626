package interfaces

import (
	"github.com/shopspring/decimal"

	domaintypes "qsvault/internal/domain/types"
)

// PowerModel converts an input magnitude into distributed power.
type PowerModel interface {
	Compute(input decimal.Decimal) (domaintypes.PowerResult, error)
}

// FrequencyModel converts an elapsed-time magnitude into a frequency.
type FrequencyModel interface {
	Compute(timeDelta decimal.Decimal) (domaintypes.FrequencyResult, error)
}

// FractionModel converts an input magnitude into fractional power.
type FractionModel interface {
	Compute(input decimal.Decimal) (domaintypes.FractionResult, error)
}

// StateReducer composes the three primary outputs into a StateCode.
type StateReducer interface {
	Reduce(
		power domaintypes.PowerResult,
		frequency domaintypes.FrequencyResult,
		fraction domaintypes.FractionResult,
	) domaintypes.StateCode
}
