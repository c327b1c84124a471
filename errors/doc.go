// Package errors provides structured error values with machine-readable codes.
//
// Construction errors raised by sequence factories (for example a zero step
// passed to seq.RangeStep), configuration failures and filesystem failures
// in the post tooling are all reported as *AppError so callers can branch on
// Code instead of matching message text.
package errors
