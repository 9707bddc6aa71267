package flscape

import "testing"

func TestDiversityErrorsWithoutPopulation(t *testing.T) {
	tr := linearTrace(5)
	if _, err := (Diversity{}).Calculate(tr); err != ErrEmptyPopulation {
		t.Fatalf("got %v, want ErrEmptyPopulation", err)
	}
}

func TestDiversityLengthMatchesTraceSize(t *testing.T) {
	tr := withPopulation(linearTrace(5), 4)
	out, err := (Diversity{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("got len %d, want 5", len(out))
	}
	for _, v := range out {
		if v < 0 {
			t.Fatalf("diversity %v is negative", v)
		}
	}
}

func TestCentroidDistanceOfSinglePointPopulationIsZero(t *testing.T) {
	pop := []Point{NewPoint([]float64{1, 1})}
	pop[0].SetValue(0)
	d, err := centroidDistance(pop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(d, 0) {
		t.Fatalf("got %v, want ~0", d)
	}
}
