package provider

import (
	"context"
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/ZaguanLabs/bhasha"
)

// scriptConfidence is reported when only the Unicode script identified the language.
const scriptConfidence = 0.5

// WhatlangDetector detects languages offline using trigram statistics, with a
// Unicode script fallback for text whatlanggo cannot classify (for example
// Assamese, which shares the Bengali script).
type WhatlangDetector struct{}

// NewWhatlangDetector creates an offline language detector.
func NewWhatlangDetector() *WhatlangDetector {
	return &WhatlangDetector{}
}

// Detect returns the ISO 639-1 code of text.
func (d *WhatlangDetector) Detect(ctx context.Context, text string) (Detection, error) {
	if err := ctx.Err(); err != nil {
		return Detection{}, err
	}

	if strings.TrimSpace(text) == "" {
		return Detection{}, &bhasha.ProviderError{Message: "cannot detect language of empty text"}
	}

	info := whatlanggo.Detect(text)
	if code := info.Lang.Iso6391(); code != "" {
		return Detection{Lang: code, Confidence: info.Confidence}, nil
	}

	if lang, ok := bhasha.ScriptLanguage(text); ok {
		return Detection{Lang: lang, Confidence: scriptConfidence}, nil
	}

	return Detection{}, &bhasha.ProviderError{Message: "language could not be identified"}
}

// Verify WhatlangDetector implements Detector
var _ Detector = (*WhatlangDetector)(nil)
