package sidechannel

import "time"

// DriveFunc asserts level on the shared medium for duration. Driver.Drive implements it
// for production transmission; tests supply a plain level-collecting func to exercise the
// chip-spreading contract without waiting out real chip periods.
type DriveFunc func(level bool, duration time.Duration)

// ChipEmitter is the TX chip emitter (component B): it maps one logical bit to a
// spread-coded chip sequence and drives the medium one chip at a time, with no inter-bit
// gap.
type ChipEmitter struct {
	drive DriveFunc
}

// NewChipEmitter returns a ChipEmitter calling drive once per chip.
func NewChipEmitter(drive DriveFunc) *ChipEmitter {
	return &ChipEmitter{drive: drive}
}

// EmitBit spreads one logical bit across a full spread-code period: a logical 1
// transmits Code verbatim, a logical 0 transmits its bitwise inverse.
func (e *ChipEmitter) EmitBit(v bool) {
	for _, codeBit := range Code {
		level := codeBit
		if !v {
			level = !level
		}
		e.drive(level, ChipPeriod)
	}
}
