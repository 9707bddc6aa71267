package flscape

import "testing"

func TestPointValueBeforeEvaluation(t *testing.T) {
	p := NewPoint([]float64{1, 2, 3})
	if p.Evaluated() {
		t.Fatal("fresh point reports evaluated")
	}
	if _, err := p.Value(); err != ErrNotEvaluated {
		t.Fatalf("expected ErrNotEvaluated, got %v", err)
	}
}

func TestPointSetValue(t *testing.T) {
	p := NewPoint([]float64{1, 2})
	p.SetValue(4.5)
	if !p.Evaluated() {
		t.Fatal("point not marked evaluated after SetValue")
	}
	v, err := p.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(v, 4.5) {
		t.Fatalf("got %v, want 4.5", v)
	}
}

func TestPointCloneIsIndependent(t *testing.T) {
	p := NewPoint([]float64{1, 2})
	p.SetValue(1)
	p.Population = []Point{NewPoint([]float64{0, 0})}
	p.Population[0].SetValue(0)

	cp := p.Clone()
	cp.Coords[0] = 99
	cp.Population[0].Coords[0] = 99

	if p.Coords[0] == 99 {
		t.Fatal("clone aliases coords")
	}
	if p.Population[0].Coords[0] == 99 {
		t.Fatal("clone aliases population")
	}
}

func TestPointDim(t *testing.T) {
	p := NewPoint([]float64{1, 2, 3})
	if p.Dim() != 3 {
		t.Fatalf("got %d, want 3", p.Dim())
	}
}
