// Package assistant turns a survey result into a conversation with a chat provider.
package assistant

import (
	"context"
	"errors"
	"fmt"
)

// ErrProviderNotConfigured is returned when no API key is available.
var ErrProviderNotConfigured = errors.New("chat provider is not configured")

// ProviderError wraps every failure of the chat provider.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("chat provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err is or wraps a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// ApologyMessage returns the text shown to the user when the provider fails.
func ApologyMessage(err error) string {
	switch {
	case errors.Is(err, ErrProviderNotConfigured):
		return "The assistant is not available because no API key is configured. " +
			"Set OPENAI_API_KEY or --chat-api-key to enable it. Your survey result is unaffected."
	case errors.Is(err, context.DeadlineExceeded):
		return "Sorry, the assistant took too long to answer. Please try again."
	case errors.Is(err, context.Canceled):
		return "The request to the assistant was cancelled."
	default:
		return fmt.Sprintf("Sorry, something went wrong while contacting the assistant: %v", err)
	}
}
