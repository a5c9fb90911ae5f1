package sidechannel

import "testing"

func TestLowPass(t *testing.T) {
	got := lowPass(10, 18, 8)
	want := 10 + (18.0-10.0)/8.0
	if got != want {
		t.Fatalf("lowPass(10, 18, 8) = %v; want %v", got, want)
	}
}

func TestLowPassConvergesTowardSample(t *testing.T) {
	baseline := 0.0
	for i := 0; i < 1000; i++ {
		baseline = lowPass(baseline, 100, PHYAveragingFactor)
	}
	if baseline < 99.9 {
		t.Fatalf("baseline after 1000 iterations = %v; want it to have converged near 100", baseline)
	}
}

func TestLowPassHoldsSteadyOnMatchingSample(t *testing.T) {
	if got := lowPass(42, 42, PHYAveragingFactor); got != 42 {
		t.Fatalf("lowPass(42, 42, k) = %v; want 42", got)
	}
}

// TestSamplerSampleDoesNotPanic is a smoke test: Sample must return without panicking and
// settle into reporting a concrete boolean once a baseline has been seeded.
func TestSamplerSampleDoesNotPanic(t *testing.T) {
	s := NewSampler(1)
	for i := 0; i < 3; i++ {
		_ = s.Sample()
	}
}
