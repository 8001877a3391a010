package service

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorInvalid          ErrorCode = "invalid_argument"
	ErrorMethodNotAllowed ErrorCode = "method_not_allowed"
	ErrorUpstream         ErrorCode = "upstream_failure"
	ErrorInternal         ErrorCode = "internal"
)

// Client-facing messages.
const (
	MsgInputRequired       = "Input text is required"
	MsgUnsupportedLanguage = "Invalid or unsupported language"
	MsgTranslationFailed   = "Translation failed"
)

// ServiceError carries a client-safe Message. Cause holds the internal
// detail and is only meant for logs.
type ServiceError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Cause }

func NewInvalidError(msg string) error { return &ServiceError{Code: ErrorInvalid, Message: msg} }

func NewMethodNotAllowedError(method string) error {
	return &ServiceError{Code: ErrorMethodNotAllowed, Message: fmt.Sprintf("%s method is not allowed", method)}
}

func NewUpstreamError(cause error) error {
	return &ServiceError{Code: ErrorUpstream, Message: MsgTranslationFailed, Cause: cause}
}

// NewInternalError masks cause, typically a request that could not be
// parsed, behind the generic failure message.
func NewInternalError(cause error) error {
	return &ServiceError{Code: ErrorInternal, Message: MsgTranslationFailed, Cause: cause}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
