package service

import (
	"sync"
	"time"
)

const rateLimiterShards = 32

// rateShard holds last-accepted spin times for a slice of the player space.
// Sharding keeps unrelated players from contending on one mutex.
type rateShard struct {
	mu        sync.Mutex
	lastSpin  map[int64]time.Time
	lastSweep time.Time
}

// RateLimiter enforces a per-player cooldown between accepted spins.
// The slot is taken optimistically on acceptance, before the spin's fate is
// known: it throttles request rate, not success. Stale entries are swept
// lazily on access so the map stays bounded under many distinct players.
type RateLimiter struct {
	cooldown      time.Duration
	sweepInterval time.Duration
	shards        [rateLimiterShards]*rateShard
}

// NewRateLimiter creates a rate limiter with the given cooldown
func NewRateLimiter(cooldown time.Duration) *RateLimiter {
	rl := &RateLimiter{
		cooldown:      cooldown,
		sweepInterval: 10 * cooldown,
	}
	for i := range rl.shards {
		rl.shards[i] = &rateShard{lastSpin: make(map[int64]time.Time)}
	}
	return rl
}

// Allow reports whether a spin by playerID may proceed at time now.
// On acceptance the player's slot is consumed immediately; a spin that later
// fails validation or settlement still counts against the cooldown.
func (rl *RateLimiter) Allow(playerID int64, now time.Time) bool {
	shard := rl.shards[uint64(playerID)%rateLimiterShards]

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if last, ok := shard.lastSpin[playerID]; ok && now.Sub(last) < rl.cooldown {
		return false
	}
	shard.lastSpin[playerID] = now

	if now.Sub(shard.lastSweep) >= rl.sweepInterval {
		for id, last := range shard.lastSpin {
			if now.Sub(last) >= rl.cooldown {
				delete(shard.lastSpin, id)
			}
		}
		shard.lastSweep = now
	}

	return true
}
