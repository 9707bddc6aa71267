package flscape

// Grad summarises the magnitude of the discrete gradient along the trace:
// objective change per unit distance between consecutive points.
type Grad struct{}

// Calculate returns the 7-number summary (min, q25, median, q75, max, mean,
// sd) of |y[i]-y[i-1]| / dist(p[i], p[i-1]) for every consecutive pair.
//
// Time: O(n*d + n log n), Space: O(n)
func (Grad) Calculate(t *Trace) ([]float64, error) {
	n := t.Size()
	y, err := t.Values()
	if err != nil {
		return nil, err
	}

	grads := make([]float64, n-1)
	for i := 1; i < n; i++ {
		d, err := Dist(t.Get(i), t.Get(i-1))
		if err != nil {
			return nil, err
		}
		diff := y[i] - y[i-1]
		if diff < 0 {
			diff = -diff
		}
		grads[i-1] = diff / d
	}

	return SummaryStats(grads).Slice(), nil
}

// OutputLength always returns 7.
func (Grad) OutputLength(t *Trace) int { return 7 }
