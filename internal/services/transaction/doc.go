// Package transaction drives the three models and the reducer over an index
// range and aggregates the results into a report.
//
// A run proceeds as follows:
//   - Check the activation gate, then the amount and parties.
//   - Read the clock once for the start time.
//   - For each index in [Start, End): read the clock again for the elapsed
//     time, apply the inclusion filter, then compute the sample.
//   - Keep successes in index order and record failures separately. One bad
//     index never aborts the run.
package transaction
