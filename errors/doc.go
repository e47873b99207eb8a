// Package errors provides the structured error type shared by every extkit
// package. Errors carry a machine-readable code, a human-readable message
// and optional details, and can be matched with the standard errors.Is and
// errors.As helpers.
package errors
