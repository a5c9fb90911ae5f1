package sidechannel

import (
	"runtime"
	"sync"
	"time"
)

// Driver is the TX clock/PHY driver (component A): it holds the shared CPU busy or idle
// until a monotonically advancing deadline. The deadline cursor is never resynchronized
// from the wall clock — resetting it to now+duration on every call would accumulate phase
// error proportional to clock-read latency, attenuating the signal the receiver sees.
type Driver struct {
	deadline time.Time
	workers  int
	pinned   bool
}

// NewDriver constructs a Driver with a worker count derived from maxConcurrency and the
// host's parallelism. When the result is 1, the driver locks itself to CPU 0 so that a
// single-threaded TX and RX share exactly one scheduler.
func NewDriver(maxConcurrency int) *Driver {
	d := &Driver{
		deadline: time.Now(),
		workers:  workerCount(maxConcurrency),
	}
	if d.workers == 1 {
		d.pinned = pinCurrentThreadToCPU0() == nil
	}
	return d
}

func workerCount(maxConcurrency int) int {
	w := runtime.NumCPU()
	if maxConcurrency < w {
		w = maxConcurrency
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Pinned reports whether the driver successfully pinned its worker to CPU 0.
func (d *Driver) Pinned() bool { return d.pinned }

// Drive advances the deadline cursor by duration and blocks until the wall clock reaches
// it. While blocking, if level is true every worker claims as much CPU time as the host
// permits; if false the driver sleeps, releasing its share. The driver never fails: under
// extreme preemption the deadline may fall behind the wall clock, and the next idle chip
// absorbs the slack because the cursor keeps advancing in fixed increments.
func (d *Driver) Drive(level bool, duration time.Duration) {
	d.deadline = d.deadline.Add(duration)
	if !level {
		if sleep := time.Until(d.deadline); sleep > 0 {
			time.Sleep(sleep)
		}
		return
	}
	if d.workers <= 1 {
		burnUntil(d.deadline)
		return
	}
	var wg sync.WaitGroup
	wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func() {
			defer wg.Done()
			burnUntil(d.deadline)
		}()
	}
	wg.Wait()
}
