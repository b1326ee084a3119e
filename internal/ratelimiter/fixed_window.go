package ratelimiter

import (
	"sync"
	"time"
)

type window struct {
	count int
	ends  time.Time
}

type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*window
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewFixedWindowLimiter(limit int, windowSize time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  windowSize,
		now:     time.Now,
	}
}

func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[ip]
	if !ok || !now.Before(w.ends) {
		rl.clients[ip] = &window{count: 1, ends: now.Add(rl.window)}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, w.ends.Sub(now)
	}

	w.count++
	return true, 0
}

func (rl *FixedWindowRateLimiter) Sweep() {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	for ip, w := range rl.clients {
		if !now.Before(w.ends) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *FixedWindowRateLimiter) tracked() int {
	rl.Lock()
	defer rl.Unlock()
	return len(rl.clients)
}
