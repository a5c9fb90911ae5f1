package sidechannel

import (
	"log"
	"testing"
)

func TestNoopDiagnosticsDoesNotPanic(t *testing.T) {
	var d Diagnostics = noopDiagnostics{}
	d.Byte(0x42)
	d.Delimiter()
	d.CRCError()
	d.LockChanged(true)
	d.LockChanged(false)
}

func TestLogDiagnosticsDefaultsToStandardLogger(t *testing.T) {
	d := NewLogDiagnostics(nil)
	if d.Logger == nil {
		t.Fatalf("expected a default logger when nil is passed")
	}
}

func TestLogDiagnosticsCRCErrorsAccumulate(t *testing.T) {
	d := NewLogDiagnostics(log.Default())
	d.CRCError()
	d.CRCError()
	d.CRCError()
	if got := d.CRCErrors(); got != 3 {
		t.Fatalf("CRCErrors() = %d; want 3", got)
	}
}
