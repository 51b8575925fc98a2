package bhasha

import (
	"context"

	"golang.org/x/time/rate"
)

const defaultRequestsPerMinute = 60

// RateLimitConfig configures a RateLimitedProvider.
type RateLimitConfig struct {
	RequestsPerMinute int // Sustained backend calls per minute (default: 60)
	BurstSize         int // Calls allowed back to back (default: RequestsPerMinute)
}

// newLimiter builds a token bucket limiter from cfg, filling in defaults.
func newLimiter(cfg RateLimitConfig) *rate.Limiter {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}

	burst := cfg.BurstSize
	if burst <= 0 {
		burst = rpm
	}

	return rate.NewLimiter(rate.Limit(float64(rpm)/60), burst)
}

// RateLimitedProvider wraps a Provider with rate limiting.
// Detection calls draw from the same bucket when the wrapped provider is a Detector.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider creates a new rate-limited provider.
func NewRateLimitedProvider(provider Provider, cfg RateLimitConfig) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  newLimiter(cfg),
	}
}

// Translate waits for a token, then calls the wrapped provider.
func (p *RateLimitedProvider) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	if err := p.wait(ctx); err != nil {
		return "", err
	}
	return p.provider.Translate(ctx, req)
}

// Detect implements Detector. It returns ErrDetectionUnsupported when the
// wrapped provider cannot detect languages.
func (p *RateLimitedProvider) Detect(ctx context.Context, text string) (Detection, error) {
	detector, ok := p.provider.(Detector)
	if !ok {
		return Detection{}, ErrDetectionUnsupported
	}

	if err := p.wait(ctx); err != nil {
		return Detection{}, err
	}
	return detector.Detect(ctx, text)
}

// wait blocks until a token is available. Cancellation, or a deadline that
// would expire before the next token, yields a ProviderError.
func (p *RateLimitedProvider) wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return &ProviderError{Message: "rate limit wait cancelled", Cause: err}
	}
	return nil
}

// Limiter returns the underlying limiter for inspection.
func (p *RateLimitedProvider) Limiter() *rate.Limiter {
	return p.limiter
}

// Verify RateLimitedProvider implements Provider and Detector
var (
	_ Provider = (*RateLimitedProvider)(nil)
	_ Detector = (*RateLimitedProvider)(nil)
)
