package flscape

import "testing"

func TestSummaryStatsOddSample(t *testing.T) {
	s := SummaryStats([]float64{5, 1, 3, 2, 4})
	if !almostEqual(s.Min, 1) || !almostEqual(s.Max, 5) {
		t.Fatalf("got min=%v max=%v, want 1/5", s.Min, s.Max)
	}
	if !almostEqual(s.Median, 3) {
		t.Fatalf("got median %v, want 3", s.Median)
	}
	if !almostEqual(s.Mean, 3) {
		t.Fatalf("got mean %v, want 3", s.Mean)
	}
}

func TestSummaryStatsEvenSampleClampsUpperMedianIndex(t *testing.T) {
	// n=2: hi = n/2+1 = 2, clamped to n-1 = 1, so median degenerates to
	// v[1] rather than panicking on an out-of-range index.
	s := SummaryStats([]float64{10, 20})
	if !almostEqual(s.Median, 20) {
		t.Fatalf("got median %v, want 20", s.Median)
	}
}

func TestSummaryStatsSliceOrder(t *testing.T) {
	s := Summary{Min: 1, Q25: 2, Median: 3, Q75: 4, Max: 5, Mean: 6, SD: 7}
	got := s.Slice()
	want := []float64{1, 2, 3, 4, 5, 6, 7}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("Slice()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeRescalesToUnitRange(t *testing.T) {
	got := normalize([]float64{2, 4, 6})
	want := []float64{0, 0.5, 1}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("normalize()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeZeroSpanReturnsZeros(t *testing.T) {
	got := normalize([]float64{5, 5, 5})
	for i, v := range got {
		if v != 0 {
			t.Fatalf("normalize()[%d] = %v, want 0 for a zero-span input", i, v)
		}
	}
}
