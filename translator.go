package bhasha

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ZaguanLabs/bhasha/locales"
)

// Translator is the main translation engine.
//
// A Translator holds only immutable configuration after construction and is
// safe for concurrent use; placeholders are scoped to each call.
type Translator struct {
	provider      Provider
	detector      Detector
	glossary      *Glossary
	catalog       *locales.Catalog
	logger        *slog.Logger
	context       string
	minConfidence float64
	concurrency   int
	processors    map[string]ContentProcessor
}

// Provider is the interface for machine translation backends.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) (string, error)
}

// Detector is the interface for language detection backends.
type Detector interface {
	Detect(ctx context.Context, text string) (Detection, error)
}

// TranslateRequest contains the parameters for a translation request.
type TranslateRequest struct {
	Text       string   // Text to translate, acronyms already masked
	TargetLang string   // Supported target language code
	SourceLang string   // Source language code, empty for auto-detect
	Context    string   // Global context for the backend, if it supports one
	Preserve   []string // Placeholder tokens that must come back unchanged
}

// ContentProcessor is the interface for content segmentation.
type ContentProcessor interface {
	Extract(content string) ([]Segment, error)
	ContentType() string
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithDetector sets the language detector.
// By default the provider is used when it implements Detector.
func WithDetector(detector Detector) TranslatorOption {
	return func(t *Translator) {
		t.detector = detector
	}
}

// WithGlossary replaces the built-in acronym glossary.
func WithGlossary(glossary *Glossary) TranslatorOption {
	return func(t *Translator) {
		t.glossary = glossary
	}
}

// WithLocales replaces the greeting catalog used by WelcomeMessage.
func WithLocales(catalog *locales.Catalog) TranslatorOption {
	return func(t *Translator) {
		t.catalog = catalog
	}
}

// WithLogger sets the logger for diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithContext sets a global context passed to providers that use one.
func WithContext(ctx string) TranslatorOption {
	return func(t *Translator) {
		t.context = ctx
	}
}

// WithMinConfidence makes DetectLanguage answer DefaultLanguage when the
// detector reports a confidence below min. Zero disables the check.
func WithMinConfidence(min float64) TranslatorOption {
	return func(t *Translator) {
		t.minConfidence = min
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) TranslatorOption {
	return func(t *Translator) {
		t.processors[processor.ContentType()] = processor
	}
}

// NewTranslator creates a new Translator backed by provider.
// The message processor, default glossary and default greeting catalog are
// registered automatically.
func NewTranslator(provider Provider, opts ...TranslatorOption) *Translator {
	t := &Translator{
		provider:   provider,
		glossary:   DefaultGlossary(),
		catalog:    locales.Default(),
		processors: make(map[string]ContentProcessor),
	}
	t.processors[ContentTypeMessage] = messageProcessor{}

	if d, ok := provider.(Detector); ok {
		t.detector = d
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = slog.Default()
	}

	return t
}

// DetectLanguage returns the supported language of text.
// Empty text, a missing detector, a detector failure or a low-confidence
// answer all yield DefaultLanguage.
func (t *Translator) DetectLanguage(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" || t.detector == nil {
		return DefaultLanguage
	}

	detection, err := t.detector.Detect(ctx, text)
	if err != nil {
		t.logger.WarnContext(ctx, "language detection failed, using default",
			"default", DefaultLanguage, "error", err)
		return DefaultLanguage
	}

	if t.minConfidence > 0 && detection.Confidence < t.minConfidence {
		t.logger.DebugContext(ctx, "low confidence detection ignored",
			"lang", detection.Lang, "confidence", detection.Confidence)
		return DefaultLanguage
	}

	return NormalizeLanguage(detection.Lang)
}

// TranslateSegment translates one piece of text, substituting glossary terms.
// English targets return text unchanged without a backend call. On any
// backend failure the original text is returned and the failure is logged.
func (t *Translator) TranslateSegment(ctx context.Context, text, targetLang string) string {
	target := NormalizeLanguage(targetLang)
	if t.isSourceLang(target) {
		return text
	}

	translated, err := t.translateText(ctx, text, target)
	if err != nil {
		return t.fallback(ctx, text, target, err)
	}
	return translated
}

// TranslateMessage translates a formatted message, preserving its structure.
// On any failure the original message is returned unchanged.
func (t *Translator) TranslateMessage(ctx context.Context, message, targetLang string) string {
	return t.TranslateContent(ctx, message, ContentTypeMessage, targetLang)
}

// TranslateContent is the fail-open form of Process.
func (t *Translator) TranslateContent(ctx context.Context, content, contentType, targetLang string) string {
	result, err := t.Process(ctx, content, contentType, targetLang)
	if err != nil {
		return t.fallback(ctx, content, targetLang, err)
	}
	return result.Content
}

// Process translates content of the specified type and reports statistics.
// Segment-level backend failures are absorbed (the segment keeps its original
// text and is counted in FailedCount); only processing failures are returned.
func (t *Translator) Process(ctx context.Context, content, contentType, targetLang string) (*ProcessedContent, error) {
	target := NormalizeLanguage(targetLang)

	// Skip if target is the canonical language
	if t.isSourceLang(target) {
		return &ProcessedContent{
			Content:    content,
			TargetLang: target,
		}, nil
	}

	processor, ok := t.processors[contentType]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: contentType,
		}
	}

	segments, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}

	result := &ProcessedContent{TargetLang: target}
	for i, seg := range segments {
		if !seg.IsText() || strings.TrimSpace(seg.Content) == "" {
			continue
		}
		result.TotalSegments++

		translated, err := t.translateText(ctx, seg.Content, target)
		if err != nil {
			t.fallback(ctx, seg.Content, target, err)
			result.FailedCount++
			continue
		}
		segments[i].Content = translated
		result.TranslatedCount++
	}

	result.Content = JoinSegments(segments)

	// Set HTML attributes if applicable
	if contentType == ContentTypeHTML {
		result.Content = t.setHTMLAttributes(result.Content, target)
	}

	return result, nil
}

// translateText masks glossary terms, calls the backend and restores glosses.
func (t *Translator) translateText(ctx context.Context, text, target string) (string, error) {
	masked, placeholders := t.glossary.Mask(text, target)
	if strings.TrimSpace(masked) == "" {
		return text, nil
	}

	if t.provider == nil {
		return "", &ProviderError{Message: "no translation provider configured"}
	}

	translated, err := t.provider.Translate(ctx, TranslateRequest{
		Text:       masked,
		TargetLang: target,
		Context:    t.context,
		Preserve:   placeholders.Tokens(),
	})
	if err != nil {
		return "", err
	}

	return placeholders.Restore(translated), nil
}

// fallback logs err and returns original unchanged.
func (t *Translator) fallback(ctx context.Context, original, target string, err error) string {
	t.logger.WarnContext(ctx, "translation failed, using original text",
		"target", target, "error", err)
	return original
}

// isSourceLang checks if target is the canonical language (no translation needed).
func (t *Translator) isSourceLang(target string) bool {
	return target == DefaultLanguage
}

// setHTMLAttributes sets the lang attribute on the <html> tag.
func (t *Translator) setHTMLAttributes(html, target string) string {
	if !strings.Contains(strings.ToLower(html), "<html") {
		return html
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() == 0 {
		return html
	}
	htmlTag.SetAttr("lang", target)

	result, err := doc.Html()
	if err != nil {
		return html
	}

	return result
}

// Glossary returns the acronym glossary.
func (t *Translator) Glossary() *Glossary {
	return t.glossary
}

// Context returns the global translation context.
func (t *Translator) Context() string {
	return t.context
}

// messageProcessor is the built-in line-oriented segmenter.
type messageProcessor struct{}

func (messageProcessor) Extract(content string) ([]Segment, error) {
	return SegmentMessage(content), nil
}

func (messageProcessor) ContentType() string {
	return ContentTypeMessage
}
