// Package reducer composes the three model outputs into a state code.
//
//	raw  = distributed_power * frequency * fraction_power
//	code = floor(raw) mod Modulus
//
// The modulo is mathematical: a negative raw value still yields a code in
// [0, Modulus).
package reducer
