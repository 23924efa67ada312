// Package progress defines the progress-reporting capability passed into
// long-running conversion operations.
//
// The core stays side-effect-free: callers inject a Sink and decide how
// progress reaches the user (log lines, a console bar, nothing).
package progress
