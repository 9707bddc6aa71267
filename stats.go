package flscape

import (
	"math"
	"sort"
)

// Summary is the 7-number summary produced by SummaryStats: min, 25%
// quartile, median, 75% quartile, max, mean, and standard deviation.
type Summary struct {
	Min, Q25, Median, Q75, Max, Mean, SD float64
}

// Slice returns the summary in the fixed (min, q25, median, q75, max, mean, sd)
// order shared by every FLM that embeds a 7-number summary in its output.
func (s Summary) Slice() []float64 {
	return []float64{s.Min, s.Q25, s.Median, s.Q75, s.Max, s.Mean, s.SD}
}

// SummaryStats computes the 7-number summary of a length-n>=1 sample:
// min, 25% quartile, median, 75% quartile, max, mean, and the unbiased
// (n-1 denominator) standard deviation.
//
// Quantiles are positional with truncation: q25 = v[floor(0.25n)],
// q75 = v[floor(0.75n)]. The median is v[floor(n/2)] for odd n and
// (v[n/2] + v[n/2+1])/2 for even n — this off-by-one is intentional, it
// matches the source this package is ported from and must be preserved.
// Because it can address one past the sorted slice for small even n, the
// upper index is clamped to the last valid position rather than panicking.
//
// Time: O(n log n), Space: O(n)
func SummaryStats(x []float64) Summary {
	n := len(x)
	v := make([]float64, n)
	copy(v, x)
	sort.Float64s(v)

	q25 := v[int(0.25*float64(n))]
	q75idx := int(0.75 * float64(n))
	if q75idx >= n {
		q75idx = n - 1
	}
	q75 := v[q75idx]

	var median float64
	if n%2 != 0 {
		median = v[n/2]
	} else {
		hi := n/2 + 1
		if hi >= n {
			hi = n - 1
		}
		median = (v[n/2] + v[hi]) / 2.0
	}

	mean := 0.0
	for _, val := range v {
		mean += val
	}
	mean /= float64(n)

	var sqDiff float64
	for _, val := range v {
		d := val - mean
		sqDiff += d * d
	}
	sd := math.Sqrt(sqDiff / float64(n-1))

	return Summary{
		Min:    v[0],
		Q25:    q25,
		Median: median,
		Q75:    q75,
		Max:    v[n-1],
		Mean:   mean,
		SD:     sd,
	}
}
