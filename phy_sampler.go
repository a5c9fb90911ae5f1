package sidechannel

import (
	"sync"
	"time"
)

// Sampler is the RX PHY sampler (component D): it measures how many busy-loop ticks it
// can complete within a fixed sample window and reports whether the medium is being
// driven high by the sender right now.
type Sampler struct {
	deadline time.Time
	workers  int
	pinned   bool
	baseline float64
	seeded   bool
}

// NewSampler constructs a Sampler with the same worker-count and CPU-0-pinning policy as
// Driver: when maxConcurrency and the host parallelism resolve to a single worker, the
// sampler pins its goroutine to CPU 0.
func NewSampler(maxConcurrency int) *Sampler {
	s := &Sampler{
		deadline: time.Now(),
		workers:  workerCount(maxConcurrency),
	}
	if s.workers == 1 {
		s.pinned = pinCurrentThreadToCPU0() == nil
	}
	return s
}

// Pinned reports whether the sampler successfully pinned its worker to CPU 0.
func (s *Sampler) Pinned() bool { return s.pinned }

// Sample advances the deadline cursor by SampleDuration, busy-counts across its workers
// until the wall clock reaches it, and folds the result into a low-pass baseline rate.
// It returns true if the medium is inferred to be driven high: a rate below the baseline
// means the sender is consuming cycles on this core right now.
func (s *Sampler) Sample() bool {
	start := s.deadline
	s.deadline = s.deadline.Add(SampleDuration)

	var total int64
	if s.workers <= 1 {
		total = countUntil(s.deadline)
	} else {
		counts := make([]int64, s.workers)
		var wg sync.WaitGroup
		wg.Add(s.workers)
		for i := range counts {
			i := i
			go func() {
				defer wg.Done()
				counts[i] = countUntil(s.deadline)
			}()
		}
		wg.Wait()
		for _, c := range counts {
			total += c
		}
	}

	elapsed := time.Since(start)
	if elapsed <= 0 {
		elapsed = SampleDuration
	}
	rate := float64(total) / float64(elapsed.Nanoseconds())

	if !s.seeded {
		s.baseline = rate
		s.seeded = true
	} else {
		s.baseline = lowPass(s.baseline, rate, PHYAveragingFactor)
	}
	return rate < s.baseline
}

// lowPass is the first-order filter used to track the baseline rate: it removes the DC
// component (host CPU speed, background load) so the sampler can tell a driven chip from
// an idle one regardless of host speed. A smaller k tracks faster but drags under long
// runs of identical chips; a larger k is steadier but responds sluggishly to load shifts.
func lowPass(baseline, sample, k float64) float64 {
	return baseline + (sample-baseline)/k
}
