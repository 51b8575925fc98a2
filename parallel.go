package bhasha

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds TranslateMessages when no limit is configured.
const DefaultConcurrency = 4

// WithConcurrency sets how many messages TranslateMessages translates at once.
// Values below 1 select DefaultConcurrency.
func WithConcurrency(n int) TranslatorOption {
	return func(t *Translator) {
		t.concurrency = n
	}
}

// TranslateMessages translates each message with TranslateMessage, running up
// to the configured concurrency at once. The result has the same length and
// order as messages. A cancelled context leaves the remaining messages
// untranslated.
func (t *Translator) TranslateMessages(ctx context.Context, messages []string, targetLang string) []string {
	results := make([]string, len(messages))
	copy(results, messages)

	if len(messages) == 0 || t.isSourceLang(NormalizeLanguage(targetLang)) {
		return results
	}

	limit := t.concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, message := range messages {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			results[i] = t.TranslateMessage(gctx, message, targetLang)
			return nil
		})
	}

	// Workers never return errors; translation failures fall back per message.
	_ = g.Wait()

	return results
}
