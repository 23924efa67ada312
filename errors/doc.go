// Package errors provides unified error handling for eafgen.
//
// It implements structured error types with machine-readable codes and
// retryable detection. The converter itself never retries; the Retryable
// flag tells the calling layer which failures are worth another attempt.
package errors
