package ratelimiter

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newLimiter(limit int, window time.Duration) (*FixedWindowRateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewFixedWindowLimiter(limit, window)
	rl.now = clock.Now
	return rl, clock
}

func TestFixedWindowRejectsRequestOverLimit(t *testing.T) {
	rl, _ := newLimiter(100, time.Minute)

	for i := 1; i <= 100; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d rejected, want allowed", i)
		}
	}

	ok, retryAfter := rl.Allow("10.0.0.1")
	if ok {
		t.Fatal("request 101 allowed, want rejected")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("retryAfter = %v, want within (0, 1m]", retryAfter)
	}
}

func TestFixedWindowResetsAfterExpiry(t *testing.T) {
	rl, clock := newLimiter(100, time.Minute)

	for i := 0; i < 101; i++ {
		rl.Allow("10.0.0.1")
	}

	clock.Advance(61 * time.Second)
	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("request one second into a fresh window was rejected")
	}
	for i := 2; i <= 100; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d of new window rejected", i)
		}
	}
	if ok, _ := rl.Allow("10.0.0.1"); ok {
		t.Fatal("request 101 of new window allowed")
	}
}

func TestFixedWindowIsPerIdentity(t *testing.T) {
	rl, _ := newLimiter(2, time.Minute)

	rl.Allow("a")
	rl.Allow("a")
	if ok, _ := rl.Allow("a"); ok {
		t.Fatal("third request from a allowed")
	}
	if ok, _ := rl.Allow("b"); !ok {
		t.Fatal("first request from b rejected")
	}
}

func TestSweepDropsExpiredIdentities(t *testing.T) {
	rl, clock := newLimiter(5, time.Minute)

	rl.Allow("old")
	clock.Advance(30 * time.Second)
	rl.Allow("fresh")
	clock.Advance(31 * time.Second)

	rl.Sweep()

	if n := rl.tracked(); n != 1 {
		t.Fatalf("tracked = %d after sweep, want 1", n)
	}
	if _, ok := rl.clients["fresh"]; !ok {
		t.Error("sweep removed an identity whose window is still open")
	}
}

func TestFixedWindowConcurrentRequests(t *testing.T) {
	rl, _ := newLimiter(100, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 250; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("10.0.0.9"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 100 {
		t.Errorf("allowed = %d under concurrency, want exactly 100", allowed)
	}
}
