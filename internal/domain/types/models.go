package types

import "github.com/shopspring/decimal"

// PowerResult is the output of the power-distribution model.
type PowerResult struct {
	DistributedPower  decimal.Decimal `json:"distributed_power"`
	EfficiencyPercent decimal.Decimal `json:"efficiency_percent"`
}

// FrequencyResult is the output of the frequency-calibration model.
type FrequencyResult struct {
	Frequency        decimal.Decimal `json:"frequency"`
	StabilityPercent decimal.Decimal `json:"stability_percent"`
}

// FractionResult is the output of the fractional-power model.
type FractionResult struct {
	FractionPower   decimal.Decimal `json:"fraction_power"`
	NormalizedPower decimal.Decimal `json:"normalized_power"`
}
