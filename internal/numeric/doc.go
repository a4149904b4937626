// Package numeric carries the fixed-precision decimal arithmetic used by the
// models.
//
// A Context holds the number of significant digits every result is rounded
// to. It is passed to each model at construction instead of living in a
// process-wide setting, so two pipelines with different precisions can run
// side by side.
package numeric
