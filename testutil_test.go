package flscape

import "math"

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// linearTrace builds an n-point, dims=2 trace where p[i] = (i, 0) and
// y[i] = i — a monotone, single-axis ramp used across several invariant
// tests.
func linearTrace(n int) *Trace {
	tr := NewTrace()
	for i := 0; i < n; i++ {
		p := NewPoint([]float64{float64(i), 0})
		p.SetValue(float64(i))
		tr.Add(p)
	}
	return tr
}

// constantTrace builds an n-point, dims=2 trace with a fixed objective
// value, positions walking along one axis so distances are non-zero.
func constantTrace(n int, val float64) *Trace {
	tr := NewTrace()
	for i := 0; i < n; i++ {
		p := NewPoint([]float64{float64(i), float64(i)})
		p.SetValue(val)
		tr.Add(p)
	}
	return tr
}

func withPopulation(tr *Trace, popSize int) *Trace {
	out := NewTrace()
	for i := 0; i < tr.Len(); i++ {
		p := tr.Get(i)
		pop := make([]Point, popSize)
		for j := 0; j < popSize; j++ {
			m := NewPoint([]float64{p.Coords[0] + float64(j), p.Coords[1]})
			m.SetValue(p.value + float64(j))
			pop[j] = m
		}
		p.Population = pop
		out.Add(p)
	}
	return out
}
