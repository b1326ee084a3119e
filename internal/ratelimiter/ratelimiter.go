package ratelimiter

import (
	"context"
	"time"
)

type Limiter interface {
	// Allow records one request from ip and reports whether it fits the
	// current window. When it does not, the duration is the time left until
	// the window resets.
	Allow(ip string) (bool, time.Duration)
	// Sweep drops identities whose window has ended.
	Sweep()
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
	SweepInterval        time.Duration
}

// StartSweeper calls l.Sweep every interval until ctx is done.
func StartSweeper(ctx context.Context, l Limiter, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Sweep()
			}
		}
	}()
}
