package flscape

import "errors"

// Input bundles the raw, positional data Characterize needs: the per-
// iteration best-so-far point and value, and, optionally, the per-iteration
// population snapshot. This is the Go-native replacement for the C ABI
// entry point spec.md describes — same data, typed fields instead of
// positional arrays of pointers.
type Input struct {
	Positions [][]float64 // n x dims
	Values    []float64   // n

	Population [][][]float64 // n x k_i x dims, nil entries allowed
	PopValues  [][]float64   // n x k_i
	PopSizes   []int         // n

	Dims int
	Seed int64
}

// Result holds every FLM's output, named per spec.md's external-interface
// record, plus the flattened form callers who want the packed vector use.
type Result struct {
	FDC        float64
	YDist      [2]float64
	Pairwise   [54]float64
	FEM        float64
	Grad       [7]float64
	M          [2]float64
	Stag       [2]float64
	Diversity  []float64 // length n
	GBestStep  []float64 // length n-1
	GBestStag  []float64 // length 2*dims
	GBestyDist []float64 // length 2*dims
}

// Flatten packs every field into the single flat vector spec.md's L formula
// describes, in orchestrator run order.
func (r Result) Flatten() []float64 {
	out := make([]float64, 0, 1+2+54+1+7+2+2+len(r.Diversity)+len(r.GBestStep)+len(r.GBestStag)+len(r.GBestyDist))
	out = append(out, r.FDC)
	out = append(out, r.YDist[:]...)
	out = append(out, r.Pairwise[:]...)
	out = append(out, r.FEM)
	out = append(out, r.Grad[:]...)
	out = append(out, r.M[:]...)
	out = append(out, r.Stag[:]...)
	out = append(out, r.Diversity...)
	out = append(out, r.GBestStep...)
	out = append(out, r.GBestStag...)
	out = append(out, r.GBestyDist...)
	return out
}

// Len returns the length Flatten() will produce: the literal sum of every
// constituent measure's output length, computed from n and dims rather than
// from spec.md's summary constant (see SPEC_FULL.md §5.2 — the two
// disagree by one, and we trust the per-measure breakdown).
func Len(n, dims int) int {
	return 1 + 2 + 54 + 1 + 7 + 2 + 2 + n + (n - 1) + 2*dims + 2*dims
}

// buildTrace constructs a Trace from Input's raw arrays. Every point added
// is marked evaluated before being added, satisfying Trace's invariant.
func buildTrace(in Input) (*Trace, error) {
	trace := NewTrace()
	for i, coords := range in.Positions {
		p := NewPoint(coords)
		p.SetValue(in.Values[i])

		if i < len(in.PopSizes) && in.PopSizes[i] > 0 {
			k := in.PopSizes[i]
			pop := make([]Point, k)
			for j := 0; j < k; j++ {
				member := NewPoint(in.Population[i][j])
				member.SetValue(in.PopValues[i][j])
				pop[j] = member
			}
			p.Population = pop
		}

		if !trace.Add(p) {
			return nil, ErrNotEvaluated
		}
	}
	return trace, nil
}

// Characterize is the package's single entry point: it builds a trace from
// the raw input, runs every FLM in the fixed order FDC, yDist, Pairwise,
// FEM, Grad, M, Stag, Diversity, GBestStep, GBestStag, GBestyDist, and
// packs their outputs into a Result.
//
// Pairwise's ErrSampleTooSmall and Diversity's ErrEmptyPopulation are
// recovered locally (their fields are zero-filled, the other measures still
// run) — every other FLM error aborts the call and is returned as-is.
func Characterize(in Input) (Result, error) {
	trace, err := buildTrace(in)
	if err != nil {
		return Result{}, err
	}
	n := trace.Size()

	var result Result

	fdc, err := (FDC{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	result.FDC = fdc[0]

	yd, err := (YDist{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	copy(result.YDist[:], yd)

	rng := NewRNG(in.Seed)
	pw, err := NewPairwise(rng).Calculate(trace)
	switch {
	case errors.Is(err, ErrSampleTooSmall):
		// result.Pairwise stays zero-filled; orchestration continues.
	case err != nil:
		return Result{}, err
	default:
		copy(result.Pairwise[:], pw)
	}

	fem, err := (FEM{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	result.FEM = fem[0]

	grad, err := (Grad{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	copy(result.Grad[:], grad)

	m, err := (M{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	copy(result.M[:], m)

	stag, err := (Stag{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	copy(result.Stag[:], stag)

	div, err := (Diversity{}).Calculate(trace)
	switch {
	case errors.Is(err, ErrEmptyPopulation):
		result.Diversity = make([]float64, n)
	case err != nil:
		return Result{}, err
	default:
		result.Diversity = div
	}

	gStep, err := (GBestStep{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	result.GBestStep = gStep

	gStag, err := (GBestStag{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	result.GBestStag = gStag

	gyDist, err := (GBestyDist{}).Calculate(trace)
	if err != nil {
		return Result{}, err
	}
	result.GBestyDist = gyDist

	return result, nil
}
