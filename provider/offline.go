package provider

import (
	"context"

	"github.com/ZaguanLabs/bhasha"
	"github.com/ZaguanLabs/bhasha/locales"
)

// OfflineProvider detects languages locally and translates only the
// pre-authored welcome labels found in the locale catalog. Any other Translate
// call fails, so translators built on it return that text unchanged.
type OfflineProvider struct {
	detector *WhatlangDetector
	catalog  *locales.Catalog
}

// NewOfflineProvider creates an offline provider backed by the embedded catalog.
func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{
		detector: NewWhatlangDetector(),
		catalog:  locales.Default(),
	}
}

// Translate returns the catalog string when req.Text is exactly a known
// welcome label and the target language has one.
func (p *OfflineProvider) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	if id, ok := locales.LabelID(req.Text); ok && p.catalog.HasLanguage(req.TargetLang) {
		if label := p.catalog.Localize(req.TargetLang, id); label != id {
			return label, nil
		}
	}
	return "", &bhasha.ProviderError{Message: "offline provider cannot translate to " + req.TargetLang}
}

// Detect delegates to the offline whatlanggo detector.
func (p *OfflineProvider) Detect(ctx context.Context, text string) (Detection, error) {
	return p.detector.Detect(ctx, text)
}

// Verify OfflineProvider implements Provider and Detector
var (
	_ Provider = (*OfflineProvider)(nil)
	_ Detector = (*OfflineProvider)(nil)
)
