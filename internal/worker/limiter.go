package worker

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles batch generation per document type, so a large batch
// against one rule set cannot starve the shared clause store.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter with a default rate applied to every
// document type until a custom rate is set.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the given document type may proceed
func (l *Limiter) Wait(ctx context.Context, documentType string) error {
	return l.getLimiter(documentType).Wait(ctx)
}

// Allow reports whether a request may proceed right now, without waiting
func (l *Limiter) Allow(documentType string) bool {
	return l.getLimiter(documentType).Allow()
}

// SetRate overrides the rate for one document type
func (l *Limiter) SetRate(documentType string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}
	l.limiters[documentType] = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

func (l *Limiter) getLimiter(documentType string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[documentType]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[documentType]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[documentType] = limiter

	return limiter
}
