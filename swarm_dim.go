package flscape

// swarmAxis extracts, for a constant population size k, particle p's
// trajectory along coordinate axis c across every iteration of the trace.
func swarmAxis(t *Trace, axis, particle int) []float64 {
	n := t.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = t.Get(i).Population[particle].Coords[axis]
	}
	return out
}

func swarmDims(t *Trace) (dims, k int, err error) {
	if t.Len() == 0 {
		return 0, 0, ErrEmptyTrace
	}
	first := t.Get(0)
	k = len(first.Population)
	if k == 0 {
		return 0, 0, ErrEmptyPopulation
	}
	for i := 1; i < t.Len(); i++ {
		if len(t.Get(i).Population) != k {
			return 0, 0, ErrEmptyPopulation
		}
	}
	return first.Population[0].Dim(), k, nil
}

// SwarmyDist applies yDist to each (axis, particle) trajectory, supplementing
// GBestyDist with per-particle detail the way the original's SwarmyDist
// supplemented GBestyDist. Output is particle-major, then axis-minor:
// ret[2*p*dims + 2*c] / ret[2*p*dims + 2*c + 1].
type SwarmyDist struct{}

// Calculate returns a length-2*dims*k vector.
func (SwarmyDist) Calculate(t *Trace) ([]float64, error) {
	dims, k, err := swarmDims(t)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 2*dims*k)
	for p := 0; p < k; p++ {
		for c := 0; c < dims; c++ {
			skew, kurt := yDistValues(swarmAxis(t, c, p))
			out[2*p*dims+2*c] = skew
			out[2*p*dims+2*c+1] = kurt
		}
	}
	return out, nil
}

// OutputLength returns 2*dims*k.
func (SwarmyDist) OutputLength(t *Trace) int {
	dims, k, err := swarmDims(t)
	if err != nil {
		return 0
	}
	return 2 * dims * k
}

// SwarmStag applies Stag to each (axis, particle) trajectory; layout
// matches SwarmyDist.
type SwarmStag struct{}

// Calculate returns a length-2*dims*k vector.
func (SwarmStag) Calculate(t *Trace) ([]float64, error) {
	dims, k, err := swarmDims(t)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 2*dims*k)
	for p := 0; p < k; p++ {
		for c := 0; c < dims; c++ {
			lstag, nstag := stagValues(swarmAxis(t, c, p))
			out[2*p*dims+2*c] = lstag
			out[2*p*dims+2*c+1] = nstag
		}
	}
	return out, nil
}

// OutputLength returns 2*dims*k.
func (SwarmStag) OutputLength(t *Trace) int {
	dims, k, err := swarmDims(t)
	if err != nil {
		return 0
	}
	return 2 * dims * k
}
