package flscape

import "math"

// yDistValues returns the (skewness, excess kurtosis) of a length-n>=2
// sample, computed exactly as spec'd: skewness uses an (n-1)-denominator
// second moment in its own, differently-scaled, denominator than the third
// moment, and kurtosis is the usual fourth-standardised-moment minus 3.
//
// Time: O(n), Space: O(1)
func yDistValues(x []float64) (skew, kurt float64) {
	n := float64(len(x))

	var ave float64
	for _, v := range x {
		ave += v
	}
	ave /= n

	var skewNum, skewDenom, kurtNum, kurtDenom float64
	for _, v := range x {
		diff := v - ave
		sq := diff * diff
		skewDenom += sq
		kurtDenom += sq

		cube := sq * diff
		skewNum += cube

		quad := cube * diff
		kurtNum += quad
	}

	skewNum /= n
	skewDenom /= n - 1
	skewDenom = math.Pow(skewDenom, 1.5)
	skew = skewNum / skewDenom

	kurtNum /= n
	kurtDenom = math.Pow(kurtDenom/n, 2)
	kurt = kurtNum/kurtDenom - 3

	return skew, kurt
}

// YDist reports the distribution shape (skewness, excess kurtosis) of the
// trace's objective values.
type YDist struct{}

// Calculate returns a length-2 vector: (skewness, excess kurtosis).
func (YDist) Calculate(t *Trace) ([]float64, error) {
	y, err := t.Values()
	if err != nil {
		return nil, err
	}
	skew, kurt := yDistValues(y)
	return []float64{skew, kurt}, nil
}

// OutputLength always returns 2.
func (YDist) OutputLength(t *Trace) int { return 2 }
