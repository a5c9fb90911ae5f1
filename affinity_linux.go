//go:build linux

package sidechannel

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinCurrentThreadToCPU0 locks the calling goroutine to its current OS thread and
// restricts that thread's scheduling affinity to logical CPU 0, so a single-worker driver
// or sampler shares exactly one scheduler with its counterpart process.
func pinCurrentThreadToCPU0() error {
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Zero()
	set.Set(0)
	return unix.SchedSetaffinity(0, &set)
}
