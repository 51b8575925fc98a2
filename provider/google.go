package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/bregydoc/gtranslate"

	"github.com/ZaguanLabs/bhasha"
)

// translateFunc matches gtranslate.TranslateWithParams.
type translateFunc func(text string, params gtranslate.TranslationParams) (string, error)

// GoogleProvider implements Provider using the public Google Translate endpoint.
// Language detection is done offline with whatlanggo.
type GoogleProvider struct {
	translate translateFunc
	detector  *WhatlangDetector
}

// NewGoogleProvider creates a new Google Translate provider.
func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{
		translate: gtranslate.TranslateWithParams,
		detector:  NewWhatlangDetector(),
	}
}

// Translate translates req.Text with a single attempt; failures are not retried.
func (p *GoogleProvider) Translate(ctx context.Context, req TranslateRequest) (out string, err error) {
	if err := ctx.Err(); err != nil {
		return "", &bhasha.ProviderError{Message: "translation cancelled", Cause: err}
	}

	if strings.TrimSpace(req.Text) == "" {
		return req.Text, nil
	}

	from := req.SourceLang
	if from == "" {
		from = "auto"
	}

	// gtranslate indexes into the raw response without bounds checks
	defer func() {
		if r := recover(); r != nil {
			out, err = "", &bhasha.ProviderError{
				Message: "malformed response from Google Translate",
				Cause:   fmt.Errorf("%v", r),
			}
		}
	}()

	translated, err := p.translate(req.Text, gtranslate.TranslationParams{
		From:  from,
		To:    req.TargetLang,
		Tries: 1,
	})
	if err != nil {
		return "", &bhasha.ProviderError{
			Message: "Google Translate call failed",
			Cause:   err,
		}
	}

	return translated, nil
}

// Detect delegates to the offline whatlanggo detector.
func (p *GoogleProvider) Detect(ctx context.Context, text string) (Detection, error) {
	return p.detector.Detect(ctx, text)
}

// Verify GoogleProvider implements Provider and Detector
var (
	_ Provider = (*GoogleProvider)(nil)
	_ Detector = (*GoogleProvider)(nil)
)
