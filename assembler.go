package sidechannel

// Assembler is the RX packet assembler (component H): it collects bytes between frame
// delimiters, verifies the trailing CRC-16, and hands off the payload.
type Assembler struct {
	buffer []byte
	diag   Diagnostics
}

// NewAssembler returns an empty Assembler.
func NewAssembler(diag Diagnostics) *Assembler {
	if diag == nil {
		diag = noopDiagnostics{}
	}
	return &Assembler{diag: diag}
}

// Feed processes one symbol. It returns the decoded payload and true when a delimiter
// closes a CRC-valid frame. Buffers shorter than 2 bytes and CRC-invalid buffers are
// silently dropped — a CRC mismatch is localized and not reported as an error, only
// through Diagnostics.CRCError.
func (a *Assembler) Feed(sym Symbol) ([]byte, bool) {
	if !sym.Delimiter {
		a.buffer = append(a.buffer, sym.Byte)
		return nil, false
	}
	defer func() { a.buffer = nil }()

	if len(a.buffer) < 2 {
		return nil, false
	}
	if CRC16(a.buffer) != 0 {
		a.diag.CRCError()
		return nil, false
	}
	payload := make([]byte, len(a.buffer)-2)
	copy(payload, a.buffer[:len(a.buffer)-2])
	return payload, true
}
