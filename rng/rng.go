// Package rng draws roulette outcomes from the operating system's
// cryptographically secure entropy source.
package rng

import (
	"crypto/rand"
	"fmt"

	"roulette/models"
)

// WheelSize is the number of pockets on a European single-zero wheel (0-36)
const WheelSize = 37

// rejectAbove is the largest byte value usable without modulo bias:
// 222 = 37 * 6, so bytes in [0, 222) map uniformly onto [0, 37).
const rejectAbove = WheelSize * (256 / WheelSize)

// Source produces unbiased outcomes in [0, WheelSize). Stateless and safe
// for concurrent use.
type Source struct{}

// NewSource creates a new crypto-backed outcome source
func NewSource() *Source {
	return &Source{}
}

// Draw returns a uniformly distributed outcome in [0, WheelSize) using
// rejection sampling over single bytes of entropy. If the entropy source
// fails, the error wraps models.ErrEntropyUnavailable; there is no
// fallback to a weaker generator.
func (s *Source) Draw() (int, error) {
	var buf [1]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", models.ErrEntropyUnavailable, err)
		}
		if int(buf[0]) < rejectAbove {
			return int(buf[0]) % WheelSize, nil
		}
		// biased sample, draw again
	}
}
