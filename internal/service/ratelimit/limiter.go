package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultCooldown is how long a provider stays throttled after a 429.
const DefaultCooldown = time.Minute

// Limiter spaces outbound calls per provider and tracks throttle cooldowns.
type Limiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	throttled map[string]time.Time
	spacing   map[string]time.Duration
	now       func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithSpacing sets the minimum interval between calls to provider.
// Zero disables spacing for that provider.
func WithSpacing(provider string, d time.Duration) Option {
	return func(l *Limiter) { l.spacing[provider] = d }
}

// WithClock overrides the time source for cooldown checks.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(opts ...Option) *Limiter {
	l := &Limiter{
		limiters:  make(map[string]*rate.Limiter),
		throttled: make(map[string]time.Time),
		spacing:   make(map[string]time.Duration),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks until provider may be called again or ctx is done.
func (l *Limiter) Wait(ctx context.Context, provider string) error {
	lim := l.limiter(provider)
	if lim == nil {
		return ctx.Err()
	}
	return lim.Wait(ctx)
}

// Throttle marks provider as rate limited for cooldown.
func (l *Limiter) Throttle(provider string, cooldown time.Duration) {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	l.mu.Lock()
	l.throttled[provider] = l.now().Add(cooldown)
	l.mu.Unlock()
}

// Throttled reports whether provider is inside a cooldown window.
func (l *Limiter) Throttled(provider string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	until, ok := l.throttled[provider]
	if !ok {
		return false
	}
	if !l.now().Before(until) {
		delete(l.throttled, provider)
		return false
	}
	return true
}

func (l *Limiter) limiter(provider string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.limiters[provider]; ok {
		return lim
	}
	d := l.spacing[provider]
	if d <= 0 {
		return nil
	}
	lim := rate.NewLimiter(rate.Every(d), 1)
	l.limiters[provider] = lim
	return lim
}
