package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a factory or combinator received an
	// argument it cannot work with.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Environment errors
const (
	// ErrCodeInvalidConfig indicates configuration failed to load or validate.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeIO indicates a filesystem operation failed.
	ErrCodeIO ErrorCode = "IO_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit codes, loosely following BSD sysexits.h.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 64
	ExitNoInput  = 66
	ExitIO       = 74
	ExitConfig   = 78
)

var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidArgument: ExitUsage,
	ErrCodeNotFound:        ExitNoInput,
	ErrCodeInvalidConfig:   ExitConfig,
	ErrCodeIO:              ExitIO,
	ErrCodeInternal:        ExitInternal,
}

// ExitCodeFor returns the process exit status associated with code.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitInternal
}
