// Package validation provides input validation for eafgen.
//
// It offers two styles: a fluent Validator that collects field errors
// across multiple checks, and tag-based struct validation backed by
// go-playground/validator. Both surface failures as errors.AppError
// with code VALIDATION_ERROR.
package validation
