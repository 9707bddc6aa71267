package flscape

import "testing"

func TestDistPythagorean(t *testing.T) {
	a := NewPoint([]float64{0, 0})
	b := NewPoint([]float64{3, 4})
	d, err := Dist(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(d, 5) {
		t.Fatalf("got %v, want 5", d)
	}
}

func TestDistDimensionMismatch(t *testing.T) {
	a := NewPoint([]float64{0, 0})
	b := NewPoint([]float64{0, 0, 0})
	if _, err := Dist(a, b); err != ErrDimensionMismatch {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestDistIsStrictlyPositiveForIdenticalPoints(t *testing.T) {
	a := NewPoint([]float64{1, 1})
	d, err := Dist(a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d <= 0 {
		t.Fatalf("got %v, want > 0", d)
	}
}
