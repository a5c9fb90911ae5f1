package sidechannel

// Transmitter assembles a payload into a complete frame and drives the shared medium bit
// by bit: payload -> Framer -> ChipEmitter -> Driver.
type Transmitter struct {
	driver *Driver
	framer *Framer
}

// NewTransmitter constructs a Transmitter with its own Driver, capped at maxConcurrency
// worker threads. diag may be nil.
func NewTransmitter(maxConcurrency int, diag Diagnostics) *Transmitter {
	driver := NewDriver(maxConcurrency)
	emitter := NewChipEmitter(driver.Drive)
	return &Transmitter{
		driver: driver,
		framer: NewFramer(emitter.EmitBit, diag),
	}
}

// Send transmits payload as one complete frame and returns once emission is complete.
func (t *Transmitter) Send(payload []byte) {
	t.framer.EmitPacket(payload)
}

// Driver exposes the underlying PHY driver, mainly for diagnostics (Pinned, worker count).
func (t *Transmitter) Driver() *Driver { return t.driver }
