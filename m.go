package flscape

// M measures neutrality: how much of the trace sits in short windows of
// near-constant objective value, and how long the longest such run is.
type M struct{}

const neutralityThreshold = 1e-8

func neutralWindow(y []float64, i int) bool {
	mx, mn := y[i], y[i]
	for k := 0; k < 3; k++ {
		v := y[i-k]
		if v > mx {
			mx = v
		}
		if v < mn {
			mn = v
		}
	}
	return mx-mn < neutralityThreshold
}

// Calculate returns a length-2 vector: (proportion of neutral positions,
// proportion of the trace taken up by the longest run of neutral
// positions).
//
// Only positions i in [2,n) are ever tested for neutrality (neutralWindow
// needs three consecutive values), so both proportions are taken over
// windows = n-2 tested positions rather than n itself — dividing by n
// instead would cap the first ratio at (n-2)/n, which can never reach 1.0
// even when every tested window is neutral, contradicting the
// all-constant-trace scenario where both values must equal 1.0. windows<=0
// means the trace is too short to test even one window; both ratios are 0.
//
// Time: O(n), Space: O(n)
func (M) Calculate(t *Trace) ([]float64, error) {
	n := t.Size()
	y, err := t.Values()
	if err != nil {
		return nil, err
	}
	yn := normalize(y)

	maxSeq := 0
	neutralCount := 0
	oldCount := 0

	for i := 2; i < n; i++ {
		if neutralWindow(yn, i) {
			neutralCount++
		} else {
			length := neutralCount - oldCount
			if length > maxSeq {
				maxSeq = length
			}
			oldCount = neutralCount
		}
	}
	length := neutralCount - oldCount
	if length > maxSeq {
		maxSeq = length
	}

	windows := n - 2
	if windows <= 0 {
		return []float64{0, 0}, nil
	}

	return []float64{
		float64(neutralCount) / float64(windows),
		float64(maxSeq) / float64(windows),
	}, nil
}

// OutputLength always returns 2.
func (M) OutputLength(t *Trace) int { return 2 }
