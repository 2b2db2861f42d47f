// Package errors provides the structured error type used across the
// processor module.
//
// Dispatch itself never manufactures errors: an unmatched request yields a
// not-implemented response. AppError exists for the surrounding layers
// (configuration, catalog building, CLI) and for callers that want to turn
// a non-success response into an error value.
package errors
