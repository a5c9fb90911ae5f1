package sidechannel

import "testing"

// genPHYSamples simulates the wire bridge between ChipEmitter and a correlator bank: each
// logical bit becomes one spread-code period, oversampled by the same factor the receiver
// samples at.
func genPHYSamples(bits []bool) []bool {
	var samples []bool
	for _, v := range bits {
		for _, codeBit := range Code {
			level := codeBit
			if !v {
				level = !level
			}
			for k := 0; k < Oversampling; k++ {
				samples = append(samples, level)
			}
		}
	}
	return samples
}

// TestSlicerLocksOntoConstantOne feeds many periods of a logical 1 and checks that once
// the slicer's clock recovery has warmed up, it steadily reports the bit as true.
func TestSlicerLocksOntoConstantOne(t *testing.T) {
	bits := make([]bool, 12)
	for i := range bits {
		bits[i] = true
	}
	samples := genPHYSamples(bits)
	bank := NewBank(nil)
	slicer := NewSlicer(bank)

	next := indexedBitFunc(samples)

	var got []bool
	for range bits {
		got = append(got, slicer.Next(next))
	}

	var steadyTrue int
	for _, v := range got[len(got)-4:] {
		if v {
			steadyTrue++
		}
	}
	if steadyTrue != 4 {
		t.Fatalf("after warm-up, recovered bits = %v; want all true in the steady state", got[len(got)-4:])
	}
}

// TestSlicerLocksOntoConstantZero is the mirror case for a steady logical 0.
func TestSlicerLocksOntoConstantZero(t *testing.T) {
	bits := make([]bool, 12)
	samples := genPHYSamples(bits)
	bank := NewBank(nil)
	slicer := NewSlicer(bank)

	next := indexedBitFunc(samples)

	var got []bool
	for range bits {
		got = append(got, slicer.Next(next))
	}

	var steadyFalse int
	for _, v := range got[len(got)-4:] {
		if !v {
			steadyFalse++
		}
	}
	if steadyFalse != 4 {
		t.Fatalf("after warm-up, recovered bits = %v; want all false in the steady state", got[len(got)-4:])
	}
}
