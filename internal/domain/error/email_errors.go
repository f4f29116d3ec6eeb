package error

import "errors"

// Email delivery domain errors.
var (
	// ErrEmailDeliveryFailed is returned when the email provider rejects or
	// fails a send. Alerts are best effort, so callers log and move on.
	ErrEmailDeliveryFailed = errors.New("email delivery failed")
)

// EmailErrorCode defines error codes for email delivery errors.
// Format: MAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeEmailRejected    EmailErrorCode = "MAIL-010001"
	ErrCodeEmailUnavailable EmailErrorCode = "MAIL-010002"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
