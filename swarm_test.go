package flscape

import "testing"

func TestSwarmStepLength(t *testing.T) {
	tr := withPopulation(linearTrace(10), 4)
	out, err := (SwarmStep{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 9*4 {
		t.Fatalf("got len %d, want %d", len(out), 9*4)
	}
}

func TestSwarmStepErrorsOnVaryingPopulationSize(t *testing.T) {
	tr := withPopulation(linearTrace(5), 3)
	p := tr.Get(2)
	p.Population = p.Population[:1]
	tr2 := NewTrace()
	for i := 0; i < tr.Len(); i++ {
		if i == 2 {
			tr2.Add(p)
		} else {
			tr2.Add(tr.Get(i))
		}
	}
	if _, err := (SwarmStep{}).Calculate(tr2); err != ErrEmptyPopulation {
		t.Fatalf("got %v, want ErrEmptyPopulation", err)
	}
}

func TestSwarmyDistLength(t *testing.T) {
	tr := withPopulation(linearTrace(10), 4)
	out, err := (SwarmyDist{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2*2*4 { // 2 dims, 4 particles
		t.Fatalf("got len %d, want %d", len(out), 2*2*4)
	}
}

func TestSwarmStagLength(t *testing.T) {
	tr := withPopulation(linearTrace(25), 3)
	out, err := (SwarmStag{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2*2*3 {
		t.Fatalf("got len %d, want %d", len(out), 2*2*3)
	}
}
