package flscape

import "math"

// float32Min is the smallest positive normal float32, added to every
// transition proportion before taking its log so a zero-probability
// transition never sends the entropy calculation to -Inf*0 == NaN. FEM's
// adaptive threshold search relies on comparing entropy values across many
// candidate epsilons, so a single NaN would silently poison the maximum.
const float32Min = 1.1754943508222875e-38

// transitionEntropy computes the entropic information content of a 3x3
// transition-count matrix (symbols in {0,1,2}), normalised by n, in log
// base 6, summed over the six ordered pairs (a,b) with a != b. Diagonal
// (a==a) transitions are excluded: only a change of symbol counts as
// information.
//
// Grounded in the same floor-before-log shape as a Kullback-Leibler style
// divergence: clamp the probability away from zero, then take its log.
//
// Time: O(1) (the matrix is always 3x3), Space: O(1)
func transitionEntropy(counts [3][3]int, n int) float64 {
	var h float64
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			if a == b {
				continue
			}
			prop := float64(counts[a][b])/float64(n) + float32Min
			h -= prop * (math.Log(prop) / math.Log(6))
		}
	}
	return h
}
