package retry_test

import (
	"testing"
	"time"

	"freight/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff_NextBackoff(t *testing.T) {
	b := retry.ExponentialBackoff{
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
	}

	t.Run("grows_exponentially_without_jitter", func(t *testing.T) {
		assert.Equal(t, time.Second, b.NextBackoff(1))
		assert.Equal(t, 2*time.Second, b.NextBackoff(2))
		assert.Equal(t, 4*time.Second, b.NextBackoff(3))
	})

	t.Run("caps_at_max_interval", func(t *testing.T) {
		assert.Equal(t, 10*time.Second, b.NextBackoff(10))
	})

	t.Run("treats_attempts_below_one_as_first", func(t *testing.T) {
		assert.Equal(t, time.Second, b.NextBackoff(0))
	})

	t.Run("jitter_stays_within_bounds", func(t *testing.T) {
		jb := b
		jb.JitterFactor = 0.5
		for range 100 {
			d := jb.NextBackoff(2)
			assert.GreaterOrEqual(t, d, 2*time.Second)
			assert.LessOrEqual(t, d, 3*time.Second)
		}
	})
}
