// Package error defines domain-specific errors for the budget dashboard application.
package error

import "errors"

// Ledger and dataset domain errors.
var (
	// ErrInvalidNumberFormat is returned when a numeric cell cannot be parsed.
	// It aborts the load of the table it appears in.
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ErrSourceUnavailable is returned when a spreadsheet source cannot be fetched.
	// It is fatal for the current load cycle; the core keeps no partial fallback.
	ErrSourceUnavailable = errors.New("spreadsheet source unavailable")

	// ErrDatasetNotLoaded is returned when a report is requested before any
	// load cycle has completed.
	ErrDatasetNotLoaded = errors.New("dataset not loaded")

	// ErrUnknownSource is returned when a source identifier has no configured URL.
	ErrUnknownSource = errors.New("unknown spreadsheet source")
)

// LedgerErrorCode defines error codes for ledger and dataset errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Parse errors (01XXXX)
	ErrCodeInvalidNumberFormat LedgerErrorCode = "BGT-010001"

	// Source errors (02XXXX)
	ErrCodeSourceUnavailable LedgerErrorCode = "BGT-020001"
	ErrCodeUnknownSource     LedgerErrorCode = "BGT-020002"
	ErrCodeInvalidWorkbook   LedgerErrorCode = "BGT-020003"

	// Dataset errors (03XXXX)
	ErrCodeDatasetNotLoaded LedgerErrorCode = "BGT-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
