package sidechannel

import (
	"sync/atomic"
	"time"
)

// burnUntil busy-spins, claiming CPU time, until wall-clock reaches deadline. The counter
// is read-modify-written atomically on every iteration so no optimizer can hoist or elide
// the loop — the CPU time consumed here is the signal itself, not incidental overhead.
func burnUntil(deadline time.Time) {
	var counter atomic.Int64
	for time.Now().Before(deadline) {
		counter.Add(1)
	}
}

// countUntil is burnUntil but returns the iteration count, used by the PHY sampler to
// measure achieved throughput over the window.
func countUntil(deadline time.Time) int64 {
	var counter atomic.Int64
	for time.Now().Before(deadline) {
		counter.Add(1)
	}
	return counter.Load()
}
