package flscape

import "testing"

func TestFEMMonotoneTraceHasZeroRuggedness(t *testing.T) {
	// every consecutive change has the same sign, so every transition is
	// same-symbol and excluded from the entropy sum: FEM should be 0.
	tr := linearTrace(10)
	out, err := (FEM{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got len %d, want 1", len(out))
	}
	if !almostEqual(out[0], 0) {
		t.Fatalf("got FEM %v, want 0", out[0])
	}
}

func TestFEMAlternatingTraceIsRugged(t *testing.T) {
	tr := NewTrace()
	for i := 0; i < 20; i++ {
		p := NewPoint([]float64{float64(i), 0})
		v := float64(i % 2)
		p.SetValue(v)
		tr.Add(p)
	}
	out, err := (FEM{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] <= 0 {
		t.Fatalf("got FEM %v, want > 0 for an alternating trace", out[0])
	}
}
