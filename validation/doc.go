// Package validation validates configuration structs using
// go-playground/validator struct tags and reports failures as
// *errors.AppError with per-field details.
package validation
