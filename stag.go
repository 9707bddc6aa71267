package flscape

// stagWindows is the set of EWMA/moving-window widths Stag sweeps, matching
// the original implementation's even widths from 6 to 20 inclusive.
var stagWindows = []int{6, 8, 10, 12, 14, 16, 18, 20}

// ewma applies an exponentially weighted moving average in place with
// smoothing factor beta: x[j] = beta*x[j] + (1-beta)*x[j-1].
func ewma(x []float64, beta float64) {
	for i := 1; i < len(x); i++ {
		x[i] = beta*x[i] + (1-beta)*x[i-1]
	}
}

// stagValues detects stagnation regions in a length-n>=2 sample normalised
// to [0,1]. For each window width w it EWMA-smooths the sequence, computes
// the moving standard deviation (centred on the smoothed sequence's own
// mean, not the local window mean — this deviation from textbook moving-sd
// is deliberate), and scans it for maximal runs where the moving sd falls
// below the smoothed sequence's overall sd. It returns (maxAvgRunLength,
// regionsAtMax): the average stagnation-run length for whichever window
// produced the longest average run, and the number of stagnation regions
// found at that window width.
//
// A window wider than the trace is skipped — the original's out-of-bounds
// access for w > n is not reproduced; this is a safety addition, not a
// behavioural change for any window width that fits.
//
// Time: O(n * |windows|), Space: O(n)
func stagValues(y []float64) (lstag, nstag float64) {
	n := len(y)
	yn := normalize(y)

	for _, w := range stagWindows {
		if w > n {
			continue
		}
		smoothed := make([]float64, n)
		copy(smoothed, yn)
		ewma(smoothed, 2.0/float64(w+1))

		avg := mean(smoothed, 0, n)
		sd := stdDevAround(smoothed, 0, n, avg)

		numWindows := n - (w - 1)
		movingSD := make([]float64, numWindows)
		for j := 0; j < numWindows; j++ {
			movingSD[j] = stdDevAround(smoothed, j, j+w, avg)
		}

		var sumRegionLen, numRegions, runLen float64
		stuck := false
		for j := 0; j < numWindows; j++ {
			if movingSD[j] < sd {
				if !stuck {
					numRegions++
					stuck = true
				}
				runLen++
			} else if stuck {
				stuck = false
				sumRegionLen += runLen
				runLen = 0
			}
		}
		if runLen > 0 {
			sumRegionLen += runLen
		}

		avgRunLen := sumRegionLen / numRegions
		if avgRunLen > lstag {
			lstag = avgRunLen
			nstag = numRegions
		}
	}

	return lstag, nstag
}

// Stag detects stagnation regions — runs of iterations where the trace's
// objective value neither improves nor worsens meaningfully.
type Stag struct{}

// Calculate returns a length-2 vector: (longest average stagnation-run
// length across window widths, the number of stagnation regions at the
// window width that attained it).
func (Stag) Calculate(t *Trace) ([]float64, error) {
	y, err := t.Values()
	if err != nil {
		return nil, err
	}
	lstag, nstag := stagValues(y)
	return []float64{lstag, nstag}, nil
}

// OutputLength always returns 2.
func (Stag) OutputLength(t *Trace) int { return 2 }
