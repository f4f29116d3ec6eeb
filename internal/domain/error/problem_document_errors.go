package error

import "errors"

// Problem-document ledger domain errors.
var (
	// ErrMissingRequiredField is returned when a required entry field is empty or blank.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrNegativeAmount is returned when an entry amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidStatus is returned when the status value is not part of the enum.
	ErrInvalidStatus = errors.New("invalid problem document status")

	// ErrProblemDocumentNotFound is returned when no record matches the given ID.
	ErrProblemDocumentNotFound = errors.New("problem document not found")

	// ErrConcurrentModification is returned when the store version token is stale
	// at write time, meaning another session persisted the table in between.
	ErrConcurrentModification = errors.New("problem document table modified concurrently")

	// ErrStoreUnavailable is returned when the record store cannot be reached.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ProblemDocumentErrorCode defines error codes for problem-document errors.
// Format: PDOC-XXYYYY where XX is category and YYYY is specific error.
type ProblemDocumentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingRequiredField ProblemDocumentErrorCode = "PDOC-010001"
	ErrCodeNegativeAmount       ProblemDocumentErrorCode = "PDOC-010002"
	ErrCodeInvalidStatus        ProblemDocumentErrorCode = "PDOC-010003"

	// Lookup errors (02XXXX)
	ErrCodeProblemDocumentNotFound ProblemDocumentErrorCode = "PDOC-020001"

	// Persistence errors (03XXXX)
	ErrCodeConcurrentModification ProblemDocumentErrorCode = "PDOC-030001"
	ErrCodeStoreUnavailable       ProblemDocumentErrorCode = "PDOC-030002"
)

// ProblemDocumentError represents a problem-document error with code and message.
type ProblemDocumentError struct {
	Code    ProblemDocumentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProblemDocumentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProblemDocumentError) Unwrap() error {
	return e.Err
}

// NewProblemDocumentError creates a new ProblemDocumentError with the given code and message.
func NewProblemDocumentError(code ProblemDocumentErrorCode, message string, err error) *ProblemDocumentError {
	return &ProblemDocumentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
