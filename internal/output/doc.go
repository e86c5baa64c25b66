// Package output renders what a run prints to stdout: the start banner,
// one line per request attempt and the final summary.
package output
