package sidechannel

import "math"

// smoothingPolicy turns a raw per-period correlation estimate into the smoothed estimate
// a channel reports between periods.
type smoothingPolicy func(prev, raw float64) float64

// DirectSmoothing assigns the raw correlation directly, discarding the previous estimate.
// This is the authoritative policy: the mature receiver design uses it.
func DirectSmoothing(_, raw float64) float64 { return raw }

// ExponentialSmoothing returns a smoothing policy that blends in the raw estimate with
// weight alpha, trading acquisition latency for a steadier lock indication.
func ExponentialSmoothing(alpha float64) smoothingPolicy {
	return func(prev, raw float64) float64 {
		return prev + (raw-prev)*alpha
	}
}

// channel is one phase offset of the correlator bank: a fixed reference sequence shared
// across the whole bank, plus this channel's own cursor and match counters.
type channel struct {
	reference   []bool
	cursor      int
	matchHi     int
	matchLo     int
	lastBit     bool
	correlation float64
}

func newChannel(reference []bool, offset int) *channel {
	return &channel{reference: reference, cursor: offset}
}

type channelResult struct {
	correlation float64
	data        bool
	clock       bool
}

// feed advances the channel by one PHY sample. At the end of each period it folds the
// match counters into a correlation estimate and the decoded data bit, then resets.
func (c *channel) feed(sample bool, smoothing smoothingPolicy) channelResult {
	n := len(c.reference)
	if c.cursor >= n {
		top, bot := c.matchHi, c.matchLo
		if bot > top {
			top, bot = bot, top
		}
		raw := float64(top-bot) / float64(n)
		c.correlation = smoothing(c.correlation, raw)
		c.lastBit = c.matchHi > c.matchLo
		c.cursor, c.matchHi, c.matchLo = 0, 0, 0
	}
	if sample == c.reference[c.cursor] {
		c.matchHi++
	} else {
		c.matchLo++
	}
	c.cursor++
	return channelResult{
		correlation: c.correlation,
		data:        c.lastBit,
		clock:       c.cursor > n/2,
	}
}

// Result is the folded output of one sample fed to every channel in a Bank.
type Result struct {
	Data  float64
	Clock float64
}

// Bank is the RX correlator bank (component E): Nc = CodeLength*Oversampling
// phase-shifted correlation channels over the shared spread code, folded into a single
// data/clock estimate per sample.
type Bank struct {
	channels  []*channel
	smoothing smoothingPolicy
	diag      Diagnostics
	locked    bool
}

// NewBank returns a Bank using the authoritative direct-assign smoothing policy.
func NewBank(diag Diagnostics) *Bank {
	return NewBankWithSmoothing(DirectSmoothing, diag)
}

// NewBankWithSmoothing returns a Bank using the given smoothing policy.
func NewBankWithSmoothing(smoothing smoothingPolicy, diag Diagnostics) *Bank {
	if diag == nil {
		diag = noopDiagnostics{}
	}
	channels := make([]*channel, len(ExpandedCode))
	for i := range channels {
		channels[i] = newChannel(ExpandedCode, i)
	}
	return &Bank{channels: channels, smoothing: smoothing, diag: diag}
}

// Feed submits one PHY sample to every channel and folds their contributions using
// fourth-power weighting, which non-linearly suppresses uncorrelated channels (whose
// correlation clusters near 0 under random input) while preserving the aligned channel's
// contribution. Linear weighting is deliberately not offered: it fails to recover the
// signal under adverse SNR.
func (b *Bank) Feed(sample bool) Result {
	var data, clock float64
	for _, ch := range b.channels {
		res := ch.feed(sample, b.smoothing)
		weight := res.correlation * res.correlation
		weight *= weight
		if res.data {
			data += weight
		} else {
			data -= weight
		}
		if res.clock {
			clock += weight
		} else {
			clock -= weight
		}
	}
	if locked := b.Locked(); locked != b.locked {
		b.locked = locked
		b.diag.LockChanged(locked)
	}
	return Result{Data: data, Clock: clock}
}

// Correlations returns the current per-channel smoothed correlation estimate.
func (b *Bank) Correlations() []float64 {
	out := make([]float64, len(b.channels))
	for i, ch := range b.channels {
		out[i] = ch.correlation
	}
	return out
}

// Locked is the purely diagnostic carrier-lock heuristic: the spread between the
// best-correlated channel and the mean exceeds k standard deviations. The bit slicer
// does not gate on this; it is informational only.
func (b *Bank) Locked() bool {
	cvec := b.Correlations()
	mean, stdev := meanStdev(cvec)
	max := cvec[0]
	for _, c := range cvec[1:] {
		if c > max {
			max = c
		}
	}
	return (max - mean) > LockStdevMultiple*stdev
}

func meanStdev(xs []float64) (mean, stdev float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d / float64(len(xs))
	}
	return mean, math.Sqrt(variance)
}
