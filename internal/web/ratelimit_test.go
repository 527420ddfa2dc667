package web

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(3, time.Minute)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !rl.allow("1.2.3.4") {
			t.Fatalf("request %d denied", i)
		}
	}
	if rl.allow("1.2.3.4") {
		t.Error("fourth request allowed")
	}
	if !rl.allow("5.6.7.8") {
		t.Error("other client denied")
	}

	now = now.Add(61 * time.Second)
	if !rl.allow("1.2.3.4") {
		t.Error("request after window denied")
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.allow("1.2.3.4")
	now = now.Add(3 * time.Minute)
	rl.allow("5.6.7.8")
	rl.sweep()

	if _, ok := rl.visitors["1.2.3.4"]; ok {
		t.Error("stale visitor not removed")
	}
	if _, ok := rl.visitors["5.6.7.8"]; !ok {
		t.Error("fresh visitor removed")
	}
	rl.stop()
	rl.stop() // idempotent
}
