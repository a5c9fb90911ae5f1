package sidechannel

import "log"

// Diagnostics is the optional, non-blocking event sink for the TX and RX pipelines. It
// must never be called from inside burnUntil/countUntil or any other timing-critical
// loop: every call site in this package is at a sample, byte, or frame boundary, never
// inside a busy-wait.
type Diagnostics interface {
	// Byte is called once per start-bit-delimited byte the TX framer emits. The RX
	// pipeline does not call it.
	Byte(b byte)
	// Delimiter is called once per frame delimiter the TX framer emits. The RX pipeline
	// does not call it.
	Delimiter()
	// CRCError is called when the assembler drops a frame for failing its checksum.
	CRCError()
	// LockChanged is called when the correlator bank's diagnostic lock heuristic
	// transitions.
	LockChanged(locked bool)
}

type noopDiagnostics struct{}

func (noopDiagnostics) Byte(byte)        {}
func (noopDiagnostics) Delimiter()       {}
func (noopDiagnostics) CRCError()        {}
func (noopDiagnostics) LockChanged(bool) {}

// LogDiagnostics is the default Diagnostics sink. It logs each event through a
// *log.Logger and keeps a running CRC-error count, the diagnostic counter a receiver is
// expected to surface since CRC failures are otherwise silent.
type LogDiagnostics struct {
	Logger    *log.Logger
	crcErrors int
}

// NewLogDiagnostics returns a LogDiagnostics backed by logger, or by log.Default() if
// logger is nil.
func NewLogDiagnostics(logger *log.Logger) *LogDiagnostics {
	if logger == nil {
		logger = log.Default()
	}
	return &LogDiagnostics{Logger: logger}
}

func (d *LogDiagnostics) Byte(b byte) { d.Logger.Printf("byte 0x%02x", b) }

func (d *LogDiagnostics) Delimiter() { d.Logger.Print("delimiter") }

func (d *LogDiagnostics) CRCError() {
	d.crcErrors++
	d.Logger.Printf("CRC error (total %d)", d.crcErrors)
}

func (d *LogDiagnostics) LockChanged(locked bool) {
	if locked {
		d.Logger.Print("SIGNAL ACQUIRED")
	} else {
		d.Logger.Print("CARRIER LOST")
	}
}

// CRCErrors returns the running count of CRC failures observed so far.
func (d *LogDiagnostics) CRCErrors() int { return d.crcErrors }
