package flscape

import "testing"

func TestFDCPerfectCorrelationOnLinearTrace(t *testing.T) {
	tr := linearTrace(10)
	out, err := (FDC{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got len %d, want 1", len(out))
	}
	// best point is index 0 (lowest y); distance to best grows linearly
	// with y, so FDC should be ~1.
	if !almostEqual(out[0], 1) {
		t.Fatalf("got %v, want ~1", out[0])
	}
}

func TestFDCOutputLength(t *testing.T) {
	tr := linearTrace(4)
	if (FDC{}).OutputLength(tr) != 1 {
		t.Fatalf("got %d, want 1", (FDC{}).OutputLength(tr))
	}
}

func TestFDCTranslationInvariance(t *testing.T) {
	base := linearTrace(10)
	out, err := (FDC{}).Calculate(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shifted := NewTrace()
	for i := 0; i < base.Len(); i++ {
		p := base.Get(i)
		sp := NewPoint(p.Coords)
		sp.SetValue(p.value + 1000)
		shifted.Add(sp)
	}
	shiftedOut, err := (FDC{}).Calculate(shifted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(out[0], shiftedOut[0]) {
		t.Fatalf("adding a constant to every objective value changed FDC: %v vs %v", out[0], shiftedOut[0])
	}
}
