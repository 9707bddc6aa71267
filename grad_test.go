package flscape

import "testing"

func TestGradConstantSlopeIsUniform(t *testing.T) {
	tr := linearTrace(6) // p[i]=(i,0), y[i]=i => |dy|/dist = 1 everywhere
	out, err := (Grad{}).Calculate(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("got len %d, want 7", len(out))
	}
	for _, v := range out[:5] { // min,q25,median,q75,max all ~1
		if !almostEqual(v, 1) {
			t.Fatalf("got %v, want ~1", v)
		}
	}
	if !almostEqual(out[6], 0) { // sd ~0
		t.Fatalf("got sd %v, want ~0", out[6])
	}
}

func TestGradOutputLength(t *testing.T) {
	tr := linearTrace(5)
	if (Grad{}).OutputLength(tr) != 7 {
		t.Fatalf("got %d, want 7", (Grad{}).OutputLength(tr))
	}
}
