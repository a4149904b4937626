// Package power implements the power-distribution model.
//
// distributed_power = input * Base * Efficiency
// efficiency_percent = Efficiency * 100
//
// Base is 1 in the linear profile, which makes the factor the plain
// efficiency (0.752). The fixed profile scales by a 400.00 base and a 0.95
// efficiency.
package power
