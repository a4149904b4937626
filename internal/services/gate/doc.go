// Package gate implements the activation gate consulted before a run.
package gate
