package translator

import (
	"errors"
	"fmt"
)

// ErrEmptyTranslation is returned when the provider answers without a
// usable translation_text.
var ErrEmptyTranslation = errors.New("no translation_text in provider reply")

// ProviderError describes a failed provider call. Message may contain text
// produced by the provider and must not be shown to end users.
type ProviderError struct {
	Service string
	Status  int
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Service, e.Message)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
