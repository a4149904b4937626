// Package fraction implements the fractional-power model.
//
// With UseInput set, fraction_power = CoefficientA * input and negative
// inputs are rejected. Without it the input is ignored entirely and
// fraction_power = CoefficientA * CoefficientB. In both modes
// normalized_power = fraction_power / Normalizer.
package fraction
