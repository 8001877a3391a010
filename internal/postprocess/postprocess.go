// Package postprocess normalizes text on its way to and from the
// translation provider.
package postprocess

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Input prepares user text for the provider: surrounding whitespace is
// dropped and the text is put in Unicode NFC form so that visually
// identical inputs reach the model as the same byte sequence.
func Input(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// Clean normalizes a model reply. An empty result means the provider
// produced no usable translation.
func Clean(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	return strings.TrimSpace(norm.NFC.String(text))
}

// IsBlank reports whether text has no content once whitespace is removed.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
