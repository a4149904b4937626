// Package profile defines the named constant bundles the pipeline runs with.
//
// Two presets reproduce the observed behaviours:
//
//   - linear (default): power and fraction scale with the index, the base
//     frequency is the reciprocal of a small period, and the frequency model
//     requires a strictly positive time delta.
//   - fixed: power uses a 400.00 base with a 0.95 efficiency, the fraction
//     model ignores its input and multiplies two coefficients, the base
//     frequency is a small constant, and any non-negative time delta is
//     accepted.
//
// Every constant can be overridden from a YAML file; see LoadFile.
package profile
