package sidechannel

// Code is the process-wide spread code: a 1023-bit Gold-code subsequence (GPS SV#1 C/A
// code). TX and RX must use the identical sequence; it is computed once at package
// initialization and never mutated afterwards.
var Code = generateGoldCode(sv1Taps)

// ExpandedCode is the reference sequence S used by the correlator bank: Code with each
// chip repeated Oversampling times, so a sample-granularity phase offset can be
// represented as a plain integer cursor position.
var ExpandedCode = expandCode(Code, Oversampling)

// sv1Taps selects the two G2 shift-register output stages (1-indexed) that are XORed
// together to produce the SV#1 C/A code, per the GPS G2i tap table.
var sv1Taps = [2]int{2, 6}

// generateGoldCode runs the standard two-LFSR GPS C/A code construction: a 10-stage G1
// register with feedback taps 3 and 10, and a 10-stage G2 register with feedback taps
// 2, 3, 6, 8, 9, 10, both seeded all-ones. The output chip is G1's last stage XORed with
// two selected G2 taps.
func generateGoldCode(taps [2]int) []bool {
	g1 := allOnesRegister()
	g2 := allOnesRegister()
	code := make([]bool, CodeLength)
	for i := range code {
		g1Out := g1[9]
		g2Out := g2[taps[0]-1] != g2[taps[1]-1]
		code[i] = g1Out != g2Out

		g1Feedback := g1[2] != g1[9]
		g2Feedback := xorMany(g2[1], g2[2], g2[5], g2[7], g2[8], g2[9])

		shiftRegister(&g1, g1Feedback)
		shiftRegister(&g2, g2Feedback)
	}
	return code
}

func allOnesRegister() [10]bool {
	var r [10]bool
	for i := range r {
		r[i] = true
	}
	return r
}

// shiftRegister shifts r one stage toward the output end and inserts feedback at stage 0.
func shiftRegister(r *[10]bool, feedback bool) {
	for i := 9; i > 0; i-- {
		r[i] = r[i-1]
	}
	r[0] = feedback
}

func xorMany(bits ...bool) bool {
	out := false
	for _, b := range bits {
		out = out != b
	}
	return out
}

// expandCode repeats each bit of code `oversampling` times, producing the sequence the
// correlator bank compares PHY samples against.
func expandCode(code []bool, oversampling int) []bool {
	out := make([]bool, len(code)*oversampling)
	for i, bit := range code {
		for j := 0; j < oversampling; j++ {
			out[i*oversampling+j] = bit
		}
	}
	return out
}
