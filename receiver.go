package sidechannel

import "context"

// Receiver recovers payloads from the shared medium: medium -> Sampler -> Bank ->
// Slicer -> SymbolReader -> Assembler -> payload. All pipeline stages are single-threaded
// and cooperative; the only concurrency is inside the Sampler's per-sample worker pool.
type Receiver struct {
	sampler   *Sampler
	slicer    *Slicer
	symbols   *SymbolReader
	assembler *Assembler
}

// NewReceiver constructs a Receiver with its own Sampler and correlator Bank, capped at
// maxConcurrency worker threads. diag may be nil.
func NewReceiver(maxConcurrency int, diag Diagnostics) *Receiver {
	bank := NewBank(diag)
	return &Receiver{
		sampler:   NewSampler(maxConcurrency),
		slicer:    NewSlicer(bank),
		symbols:   NewSymbolReader(),
		assembler: NewAssembler(diag),
	}
}

// Packets starts the receive pipeline in a goroutine and streams each CRC-valid payload
// to the returned channel, which is closed when ctx is done. Cancellation is only
// checked between symbols, never inside the PHY sampler's timing-critical busy loop.
func (r *Receiver) Packets(ctx context.Context) <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		// The sampler is driven from this goroutine, so single-worker pinning has to be
		// applied to this goroutine's OS thread rather than the constructing one.
		if r.sampler.workers == 1 {
			r.sampler.pinned = pinCurrentThreadToCPU0() == nil
		}
		nextBit := func() bool {
			return r.slicer.Next(r.sampler.Sample)
		}
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			sym := r.symbols.Next(nextBit)
			payload, ok := r.assembler.Feed(sym)
			if !ok {
				continue
			}
			select {
			case out <- payload:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
