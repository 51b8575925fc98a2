package bhasha

import (
	"errors"
	"fmt"
)

// ErrDetectionUnsupported is returned by providers that cannot detect languages.
var ErrDetectionUnsupported = errors.New("language detection not supported")

// ProviderError indicates a translation backend failure (network, quota, malformed response).
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ProcessorError indicates a content processing failure (parse error, unknown content type).
type ProcessorError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to process
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processor error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("processor error (%s): %s", e.ContentType, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Cause
}

// GlossaryError indicates that glossary data could not be loaded.
type GlossaryError struct {
	Message string
	Cause   error
}

func (e *GlossaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("glossary error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("glossary error: %s", e.Message)
}

func (e *GlossaryError) Unwrap() error {
	return e.Cause
}
