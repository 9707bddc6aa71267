package flscape

// GBestStep reports the step size of the trajectory: the distance between
// consecutive points of the trace.
type GBestStep struct{}

// Calculate returns a length-(n-1) vector: dist(p[i-1], p[i]) for
// i in [1,n).
//
// Time: O(n*d), Space: O(n)
func (GBestStep) Calculate(t *Trace) ([]float64, error) {
	n := t.Size()
	out := make([]float64, n-1)
	for i := 1; i < n; i++ {
		d, err := Dist(t.Get(i-1), t.Get(i))
		if err != nil {
			return nil, err
		}
		out[i-1] = d
	}
	return out, nil
}

// OutputLength returns n-1, where n is the trace's advertised size.
func (GBestStep) OutputLength(t *Trace) int { return t.Size() - 1 }
