package flscape

import "testing"

func TestGBestyDistLength(t *testing.T) {
	tr := linearTrace(10) // dims=2
	out, err := (GBestyDist{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got len %d, want 4", len(out))
	}
	if (GBestyDist{}).OutputLength(tr) != 4 {
		t.Fatalf("OutputLength mismatch")
	}
}

func TestGBestyDistEmptyTrace(t *testing.T) {
	tr := NewTrace()
	if _, err := (GBestyDist{}).Calculate(tr); err != ErrEmptyTrace {
		t.Fatalf("got %v, want ErrEmptyTrace", err)
	}
	if (GBestyDist{}).OutputLength(tr) != 0 {
		t.Fatalf("got %d, want 0", (GBestyDist{}).OutputLength(tr))
	}
}

func TestGBestStagLength(t *testing.T) {
	tr := linearTrace(25)
	out, err := (GBestStag{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got len %d, want 4", len(out))
	}
}
