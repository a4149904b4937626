// Package app wires application dependencies for the CLI.
//
// It builds the numeric context, the three models, the reducer, the
// activation gate, the transaction runner and the report store from Config,
// exposing them via the Wire struct for commands to use.
package app
