//go:build !linux

package sidechannel

// pinCurrentThreadToCPU0 is a no-op outside Linux: the OS affinity facility the driver and
// sampler prefer has no portable equivalent, and single-core mode degrades to best-effort
// scheduling without it. The driver never fails because of this.
func pinCurrentThreadToCPU0() error {
	return nil
}
