package flscape

import "math"

// FEM measures entropic ruggedness under an adaptively-searched threshold.
type FEM struct{}

// symbolize writes, into symbols (length n-1), the direction of each
// consecutive objective-value change under threshold eps: +1 for a rise
// greater than eps, -1 (stored as 2) for a fall below -eps, 0 otherwise. It
// reports whether every symbol came out neutral.
func symbolize(y []float64, eps float64, symbols []int) bool {
	allNeutral := true
	for i := 1; i < len(y); i++ {
		diff := y[i] - y[i-1]
		switch {
		case diff < -eps:
			symbols[i-1] = 2
			allNeutral = false
		case diff > eps:
			symbols[i-1] = 1
			allNeutral = false
		default:
			symbols[i-1] = 0
		}
	}
	return allNeutral
}

// Calculate returns a length-1 vector: the maximum, over an adaptively
// narrowed range of thresholds, of the entropic information content of the
// {-1,0,+1} symbol string derived from consecutive objective-value changes.
//
// Time: O(n * iterations), Space: O(n)
func (FEM) Calculate(t *Trace) ([]float64, error) {
	n := t.Size()
	y, err := t.Values()
	if err != nil {
		return nil, err
	}

	symbols := make([]int, n-1)

	epsTop := 1.0
	for !symbolize(y, epsTop, symbols) {
		epsTop *= 2
	}

	epsBottom := 0.01
	epsCurrent := 0.0
	maxFEM := 0.0

	for {
		epsNext := epsBottom + (epsTop-epsBottom)/10.0
		if math.Abs(epsCurrent-epsNext) < 0.01 {
			break
		}
		epsCurrent = epsNext

		allNeutral := symbolize(y, epsCurrent, symbols)
		if allNeutral {
			epsTop = epsCurrent
		} else {
			epsBottom = epsCurrent
		}

		if epsTop-epsBottom < 0.01 {
			break
		}

		var counts [3][3]int
		for i := 1; i < n-1; i++ {
			counts[symbols[i]][symbols[i-1]]++
		}

		fem := transitionEntropy(counts, n)
		if fem > maxFEM {
			maxFEM = fem
		}
	}

	return []float64{maxFEM}, nil
}

// OutputLength always returns 1.
func (FEM) OutputLength(t *Trace) int { return 1 }
