package flscape

import "math"

// sqrtf is math.Sqrt under a short alias used by the correlation-style
// measures (FDC, Pairwise's NBC vector) to keep their formulas readable.
func sqrtf(x float64) float64 {
	return math.Sqrt(x)
}

// mean returns the arithmetic mean of x[start:end].
func mean(x []float64, start, end int) float64 {
	sum := 0.0
	for i := start; i < end; i++ {
		sum += x[i]
	}
	return sum / float64(end-start)
}

// stdDevAround returns the unbiased (n-1) standard deviation of x[start:end]
// around the given centre, which need not be the local mean.
func stdDevAround(x []float64, start, end int, centre float64) float64 {
	sum := 0.0
	for i := start; i < end; i++ {
		d := x[i] - centre
		sum += d * d
	}
	return sqrtf(sum / float64(end-start-1))
}

// normalize returns a copy of x rescaled to [0,1] via (x-min)/(max-min). A
// zero-span (all-constant) input returns all zeros rather than dividing by
// zero — every element is already equal, so collapsing them to a shared
// constant is the rescaling's natural degenerate case, and it keeps callers
// like neutralWindow from comparing against NaN.
func normalize(x []float64) []float64 {
	mn, mx := x[0], x[0]
	for _, v := range x {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	out := make([]float64, len(x))
	span := mx - mn
	if span == 0 {
		return out
	}
	for i, v := range x {
		out[i] = (v - mn) / span
	}
	return out
}
