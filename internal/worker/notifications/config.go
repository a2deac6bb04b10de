package notifications

import (
	"time"

	"golang.org/x/time/rate"
)

// RetryConfig настройки повторной отправки
type RetryConfig struct {
	MaxRetries  int
	RetryDelays []time.Duration
}

// DefaultRetryConfig 3 повтора через 1s, 5s и 30s
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		RetryDelays: []time.Duration{
			1 * time.Second,
			5 * time.Second,
			30 * time.Second,
		},
	}
}

func (c RetryConfig) delay(attempt int) time.Duration {
	if len(c.RetryDelays) == 0 {
		return time.Second
	}
	if attempt >= len(c.RetryDelays) {
		return c.RetryDelays[len(c.RetryDelays)-1]
	}
	return c.RetryDelays[attempt]
}

// Config настройки воркера доставки
type Config struct {
	RatePerSecond float64 // 0 - без ограничения
	Burst         int
	PollWait      time.Duration // сколько ждать событие в одном BRPOP
	Retry         RetryConfig
}

func (c Config) limiter() *rate.Limiter {
	if c.RatePerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := c.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(c.RatePerSecond), burst)
}
