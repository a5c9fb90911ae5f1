package sidechannel

import "time"

// Wire-format and timing constants shared between TX and RX. They are fixed at compile
// time, created once, and never mutated — changing any of them breaks compatibility with
// a peer built from a different value.
const (
	// CodeLength is L, the number of chips in one spread-code period.
	CodeLength = 1023

	// Oversampling is O, the number of PHY samples the receiver takes per chip.
	Oversampling = 3

	// ChipPeriod is T_chip, the on-wire duration of a single chip.
	ChipPeriod = 16 * time.Millisecond

	// SampleDuration is T_sample = T_chip / O, the RX PHY sampling window.
	SampleDuration = ChipPeriod / Oversampling

	// DelimiterBits is the number of consecutive logical-0 bits that form a frame
	// delimiter. The wire format requires at least 9; this is the reference value.
	DelimiterBits = 20

	// PHYAveragingFactor is K, the low-pass constant of the RX baseline-rate filter.
	PHYAveragingFactor = 8

	// LockStdevMultiple is k, the carrier-lock heuristic's threshold multiplier.
	LockStdevMultiple = 5.0

	// MaxConcurrency caps the number of worker threads the PHY driver and sampler may
	// spawn. Setting it to 1 enables single-core affinity-pinned mode.
	MaxConcurrency = 999
)
