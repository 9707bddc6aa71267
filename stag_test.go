package flscape

import "testing"

func TestStagValuesDetectsFlatTail(t *testing.T) {
	y := make([]float64, 30)
	for i := 0; i < 15; i++ {
		y[i] = float64(i)
	}
	for i := 15; i < 30; i++ {
		y[i] = 14
	}
	lstag, nstag := stagValues(y)
	if lstag <= 0 {
		t.Fatalf("got lstag %v, want > 0 for a trace with a flat tail", lstag)
	}
	if nstag <= 0 {
		t.Fatalf("got nstag %v, want > 0", nstag)
	}
}

func TestStagSkipsWindowsWiderThanTrace(t *testing.T) {
	// n=5 is narrower than every entry in stagWindows, so every window is
	// skipped and the result is the untouched zero value rather than an
	// out-of-bounds access.
	lstag, nstag := stagValues([]float64{1, 2, 3, 4, 5})
	if lstag != 0 || nstag != 0 {
		t.Fatalf("got (%v, %v), want (0, 0)", lstag, nstag)
	}
}

func TestStagCalculateLength(t *testing.T) {
	tr := linearTrace(10)
	out, err := (Stag{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got len %d, want 2", len(out))
	}
}
