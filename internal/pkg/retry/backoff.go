// Package retry provides backoff calculation for retried background work.
package retry

import (
	"math"
	"math/rand/v2"
	"time"
)

// ExponentialBackoff computes exponentially growing delays with jitter.
// The delay for attempt n is InitialInterval * Multiplier^(n-1), plus up to
// JitterFactor of itself, capped at MaxInterval.
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

// NewDefaultExponentialBackoff returns the backoff policy used by the job pipeline:
// 1s initial, doubling, 20% jitter, capped at 5 minutes.
func NewDefaultExponentialBackoff() ExponentialBackoff {
	return ExponentialBackoff{
		InitialInterval: time.Second,
		MaxInterval:     5 * time.Minute,
		Multiplier:      2.0,
		JitterFactor:    0.2,
	}
}

// NextBackoff returns the delay before the given retry attempt (1-based).
func (b ExponentialBackoff) NextBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	backoff := float64(b.InitialInterval) * math.Pow(b.Multiplier, float64(attempt-1))
	if b.JitterFactor > 0 {
		backoff += rand.Float64() * b.JitterFactor * backoff
	}
	if backoff > float64(b.MaxInterval) {
		backoff = float64(b.MaxInterval)
	}

	return time.Duration(backoff)
}
