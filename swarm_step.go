package flscape

// SwarmStep reports, for a trace whose population size is constant across
// iterations, the per-particle step size: dist(swarm[i-1][p], swarm[i][p])
// for every particle p and every consecutive pair of iterations. It is the
// population analogue of GBestStep — the gBest trajectory is a single
// particle's worth of this measure.
//
// This supplements spec.md, which only wires the gBest-based step/dimension
// measures into Characterize's fixed output; SwarmStep mirrors the
// original's SwarmStep/SwarmyDist/SwarmStag, which were implemented but
// never wired into the default characterization run either. It is exposed
// for callers who want per-particle detail, not part of Result/Flatten.
type SwarmStep struct{}

// Calculate returns a length-(n-1)*k vector, laid out iteration-major:
// ret[(i-1)*k + p] is the step size of particle p between iterations i-1
// and i. It returns ErrEmptyPopulation if any iteration's population is
// absent or the population size varies across iterations.
func (SwarmStep) Calculate(t *Trace) ([]float64, error) {
	n := t.Len()
	if n == 0 {
		return nil, ErrEmptyTrace
	}
	k := len(t.Get(0).Population)
	if k == 0 {
		return nil, ErrEmptyPopulation
	}

	out := make([]float64, (n-1)*k)
	for i := 1; i < n; i++ {
		prev := t.Get(i - 1).Population
		cur := t.Get(i).Population
		if len(prev) != k || len(cur) != k {
			return nil, ErrEmptyPopulation
		}
		for p := 0; p < k; p++ {
			d, err := Dist(prev[p], cur[p])
			if err != nil {
				return nil, err
			}
			out[(i-1)*k+p] = d
		}
	}
	return out, nil
}

// OutputLength returns (n-1)*k, where k is the first iteration's
// population size.
func (SwarmStep) OutputLength(t *Trace) int {
	if t.Len() == 0 {
		return 0
	}
	return (t.Len() - 1) * len(t.Get(0).Population)
}
