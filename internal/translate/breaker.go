package translate

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a Provider in a circuit breaker so a failing
// model API aborts a batch run quickly instead of timing out on every
// remaining request.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner with a circuit breaker that opens
// after five consecutive failures and probes again after 30 seconds.
func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate implements Provider.
func (p *BreakerProvider) Translate(ctx context.Context, req Request) (string, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.Translate(ctx, req)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped provider's name.
func (p *BreakerProvider) Name() string { return p.inner.Name() }

// IsAvailable checks the wrapped provider.
func (p *BreakerProvider) IsAvailable() error { return p.inner.IsAvailable() }
