package clients

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/stayhub/payment-service/config"
)

func calculateBackoff(attempt int, retryConfig config.RetryConfig) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * retryConfig.BaseDelay

	if delay > retryConfig.MaxDelay {
		delay = retryConfig.MaxDelay
	}

	if retryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
