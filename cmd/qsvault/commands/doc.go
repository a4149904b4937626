// Package commands defines the qsvault CLI and wires dependencies for subcommands.
//
// Commands
//
//   - run        Activate the gate, run one transaction and print its report
//   - sample     Compute a single index outside of a run
//   - profiles   List the built-in profiles and their constants
//   - show       Print a previously exported report
//
// # Implementation
//
// The root command configures the tint logger, resolves the profile (preset
// or YAML override file) and builds the dependency graph before any
// subcommand runs, so handlers share one app.Wire.
package commands
