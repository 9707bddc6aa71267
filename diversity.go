package flscape

// Diversity reports, for each iteration, the mean distance from every
// population member to the population's centroid — a measure of
// explorative vs. exploitative spread.
//
// Diversity is the one measure the orchestrator recovers from locally: if
// any iteration's population snapshot is absent, Calculate returns
// ErrEmptyPopulation and the orchestrator substitutes an all-zero vector of
// length n rather than aborting the whole characterization.
type Diversity struct{}

func centroidDistance(pop []Point) (float64, error) {
	if len(pop) == 0 {
		return 0, ErrEmptyPopulation
	}
	dims := pop[0].Dim()
	centre := make([]float64, dims)
	for _, p := range pop {
		for c := 0; c < dims; c++ {
			centre[c] += p.Coords[c]
		}
	}
	for c := range centre {
		centre[c] /= float64(len(pop))
	}
	centroid := NewPoint(centre)
	centroid.SetValue(0)

	var total float64
	for _, p := range pop {
		d, err := Dist(centroid, p)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total / float64(len(pop)), nil
}

// Calculate returns a length-n vector of per-iteration diversity values.
//
// Time: O(n*k*d), Space: O(n)
func (Diversity) Calculate(t *Trace) ([]float64, error) {
	n := t.Size()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		d, err := centroidDistance(t.Get(i).Population)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// OutputLength returns the trace's advertised size n.
func (Diversity) OutputLength(t *Trace) int { return t.Size() }
