package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider is a mock translation backend for testing.
// It is safe for concurrent use.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	Detections   map[string]string // Map of source text to detected language
	Err          error             // When set, every call fails with Err

	mu          sync.Mutex
	callCount   int
	lastRequest *TranslateRequest
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hello":            "नमस्ते",
			"Business":         "व्यवसाय",
			"setup help":       "स्थापना सहायता",
			"Register for GST": "पंजीकरण करें",
		},
		Detections: map[string]string{},
	}
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastRequest = &req
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	if translation, ok := m.Translations[req.Text]; ok {
		return translation, nil
	}
	// Return bracketed text for unknown translations
	return fmt.Sprintf("[%s:%s]", req.TargetLang, req.Text), nil
}

// Detect returns the configured detection, or "en" for unknown text.
func (m *MockProvider) Detect(ctx context.Context, text string) (Detection, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.Err != nil {
		return Detection{}, m.Err
	}

	if lang, ok := m.Detections[text]; ok {
		return Detection{Lang: lang, Confidence: 1}, nil
	}
	return Detection{Lang: "en", Confidence: 1}, nil
}

// CallCount returns the number of Translate and Detect calls.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the last translate request received, or nil.
func (m *MockProvider) LastRequest() *TranslateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastRequest = nil
}

// Verify MockProvider implements Provider and Detector
var (
	_ Provider = (*MockProvider)(nil)
	_ Detector = (*MockProvider)(nil)
)
