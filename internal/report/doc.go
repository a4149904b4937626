// Package report renders transaction reports for the terminal and derives
// their short fingerprint.
package report
