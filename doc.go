// Package sidechannel implements a covert unidirectional data link between two
// mutually-isolated processes that share a physical CPU, using shared core load as the
// transmission medium instead of a network or bus.
//
// The transmitter (Transmitter) raises the effective load of the shared cores to signal a
// "high" chip and relaxes it to signal "low"; the receiver (Receiver) infers the chip
// value by timing how many busy-loop iterations it can complete per unit time against the
// same wall clock, then recovers the data clock from a DSSS/CDMA correlator bank running
// over a shared spread code.
//
// File I/O, CLI entry points, and packet persistence live in cmd/sidechannel-tx and
// cmd/sidechannel-rx; this package is the physical- and link-layer modem only.
package sidechannel
