package sidechannel

import (
	"testing"
	"time"
)

func TestDriverDriveIdleBlocksForDuration(t *testing.T) {
	d := NewDriver(1)
	start := time.Now()
	d.Drive(false, 5*time.Millisecond)
	if elapsed := time.Since(start); elapsed < 4*time.Millisecond {
		t.Fatalf("Drive(false, 5ms) returned after %v; want >= ~5ms", elapsed)
	}
}

func TestDriverDriveBusyBlocksForDuration(t *testing.T) {
	d := NewDriver(1)
	start := time.Now()
	d.Drive(true, 5*time.Millisecond)
	if elapsed := time.Since(start); elapsed < 4*time.Millisecond {
		t.Fatalf("Drive(true, 5ms) returned after %v; want >= ~5ms", elapsed)
	}
}

func TestDriverDeadlineCursorAdvancesMonotonically(t *testing.T) {
	d := NewDriver(1)
	first := d.deadline
	d.Drive(false, 2*time.Millisecond)
	second := d.deadline
	if !second.After(first) {
		t.Fatalf("deadline cursor did not advance: first=%v second=%v", first, second)
	}
	want := first.Add(2 * time.Millisecond)
	if !second.Equal(want) {
		t.Fatalf("deadline cursor = %v; want exactly first+duration = %v", second, want)
	}
}

func TestDriverPinnedDoesNotPanic(t *testing.T) {
	d := NewDriver(1)
	_ = d.Pinned()
}

func TestWorkerCountClampsToAtLeastOne(t *testing.T) {
	if got := workerCount(0); got < 1 {
		t.Fatalf("workerCount(0) = %d; want >= 1", got)
	}
	if got := workerCount(-5); got < 1 {
		t.Fatalf("workerCount(-5) = %d; want >= 1", got)
	}
}

func TestWorkerCountRespectsCap(t *testing.T) {
	if got := workerCount(1); got != 1 {
		t.Fatalf("workerCount(1) = %d; want 1", got)
	}
}
