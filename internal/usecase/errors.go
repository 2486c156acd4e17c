package usecase

import "errors"

// DomainError is a failure decided locally, before any call to the gateway.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

const (
	CodeNotConnected  = "NOT_CONNECTED"
	CodeBusy          = "BUSY"
	CodeUnknownAction = "UNKNOWN_ACTION"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeStorage       = "STORAGE_ERROR"
)

// ErrorCode classifies a local failure. Anything else is a gateway failure
// and has no code.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	if IsValidationError(err) {
		return CodeInvalidInput
	}
	return ""
}

// ValidationError rejects a form field. Message is already user-facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
