package flscape

import "sort"

// pairwiseFraction is the proportion of the trace, by ascending objective
// value, used both as the elite dispersion subset and as the nearest-
// neighbour sampling size. It is capped at pairwiseMaxSample.
const (
	pairwiseFraction   = 0.15
	pairwiseMaxSample  = 100
	pairwiseSamples    = 30
	pearsonFloor       = 1e-10
)

// Pairwise computes dispersion of the elite subset plus nearest-neighbour /
// nearest-better clustering features sampled from the full trace, backed by
// a memoised pairwise-distance cache. It needs a seeded RNG for its
// Fisher-Yates subsampling, so unlike the other FLMs it is a value with
// state rather than a zero-size struct.
type Pairwise struct {
	rng *RNG
}

// NewPairwise builds a Pairwise measure driven by the given RNG.
func NewPairwise(rng *RNG) Pairwise {
	return Pairwise{rng: rng}
}

// eliteSize returns floor(pairwiseFraction*n) capped at pairwiseMaxSample.
func eliteSize(n int) int {
	k := int(pairwiseFraction * float64(n))
	if k > pairwiseMaxSample {
		k = pairwiseMaxSample
	}
	return k
}

// Calculate returns a length-54 vector: 19 averaged nearest-neighbour/
// nearest-better clustering values followed by 35 elite-dispersion values.
// It returns ErrSampleTooSmall when the elite subset has fewer than 2
// points — one point alone has no "other" to measure dispersion or
// nearest-neighbour distance against, which is the effective floor behind
// spec's "sample too small" boundary even though the nominal threshold is
// k<=0.
//
// Time: O(n log n + samples*s^2), Space: O(n^2)
func (p Pairwise) Calculate(t *Trace) ([]float64, error) {
	n := t.Size()
	k := eliteSize(n)
	if k < 2 {
		return nil, ErrSampleTooSmall
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	y, err := t.Values()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(order, func(i, j int) bool {
		return y[order[i]] < y[order[j]]
	})
	sortedFit := make([]float64, n)
	for pos, idx := range order {
		sortedFit[pos] = y[idx]
	}

	dist := make([][]float64, n)
	seen := make([][]bool, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		seen[i] = make([]bool, n)
	}
	getDist := func(a, b int) (float64, error) {
		if a == b {
			return 0, nil
		}
		if seen[a][b] {
			return dist[a][b], nil
		}
		d, err := Dist(t.Get(order[a]), t.Get(order[b]))
		if err != nil {
			return 0, err
		}
		dist[a][b], dist[b][a] = d, d
		seen[a][b], seen[b][a] = true, true
		return d, nil
	}

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if _, err := getDist(i, j); err != nil {
				return nil, err
			}
		}
	}

	dispersionStats, err := dispersionFeatures(dist, k, n)
	if err != nil {
		return nil, err
	}

	nbcSum := make([]float64, 19)
	sampleSize := k
	perm := make([]int, n)
	subDist := make([][]float64, sampleSize)
	for i := range subDist {
		subDist[i] = make([]float64, sampleSize)
	}
	subFit := make([]float64, sampleSize)

	for round := 0; round < pairwiseSamples; round++ {
		for i := range perm {
			perm[i] = i
		}
		for i := 0; i < n; i++ {
			x := p.rng.IntN(n)
			perm[i], perm[x] = perm[x], perm[i]
		}
		next := perm[:sampleSize]

		for i := 0; i < sampleSize; i++ {
			for j := i + 1; j < sampleSize; j++ {
				if _, err := getDist(next[i], next[j]); err != nil {
					return nil, err
				}
			}
		}

		for i := 0; i < sampleSize; i++ {
			subFit[i] = sortedFit[next[i]]
			for j := 0; j < sampleSize; j++ {
				d, err := getDist(next[i], next[j])
				if err != nil {
					return nil, err
				}
				subDist[i][j] = d
			}
		}

		tmp := nearestNeighborFeatures(subDist, subFit)
		for i, v := range tmp {
			nbcSum[i] += v
		}
	}

	ret := make([]float64, 0, 54)
	for _, v := range nbcSum {
		ret = append(ret, v/float64(pairwiseSamples))
	}
	ret = append(ret, dispersionStats...)
	return ret, nil
}

// OutputLength always returns 54.
func (Pairwise) OutputLength(t *Trace) int { return 54 }

// dispersionFeatures computes the 35-value dispersion vector: 5 shrinking-
// window 7-number summaries of the upper-triangular elite distances, for
// k_r = k - r*floor(0.2n), r in [0,5), clamped to >=2 (the source does not
// clamp and can underflow for small n; this clamp is the redesign this
// package follows).
func dispersionFeatures(dist [][]float64, k, n int) ([]float64, error) {
	twentyPercent := int(0.2 * float64(n))
	out := make([]float64, 0, 35)
	for r := 0; r < 5; r++ {
		kr := k - r*twentyPercent
		if kr < 2 {
			kr = 2
		}
		if kr > k {
			kr = k
		}
		pairs := make([]float64, 0, kr*(kr-1)/2)
		for row := 0; row < kr; row++ {
			for col := row + 1; col < kr; col++ {
				pairs = append(pairs, dist[row][col])
			}
		}
		out = append(out, SummaryStats(pairs).Slice()...)
	}
	return out, nil
}

// nearestNeighborFeatures returns, for a size-s subsample with pairwise
// distances dists and objective values fits: the 7-number summary of
// nearest-neighbour distances, the 7-number summary of nearest-better
// distances, and the 5-value nearest-better-clustering vector, concatenated
// (19 values total).
func nearestNeighborFeatures(dists [][]float64, fits []float64) []float64 {
	s := len(fits)
	nn := make([]int, s)
	nb := make([]int, s)

	for i := 0; i < s; i++ {
		if i > 0 {
			nn[i] = i - 1
		} else {
			nn[i] = 1
		}
		nb[i] = -1
		for j := 0; j < s; j++ {
			if j == i {
				continue
			}
			if dists[i][j] < dists[i][nn[i]] {
				nn[i] = j
			}
			if fits[j] < fits[i] {
				if nb[i] == -1 || dists[i][j] < dists[i][nb[i]] {
					nb[i] = j
				}
			}
		}
	}

	nnd := make([]float64, s)
	nbd := make([]float64, s)
	for i := 0; i < s; i++ {
		nnd[i] = dists[i][nn[i]]
		if nb[i] != -1 {
			nbd[i] = dists[i][nb[i]]
		}
	}

	nnStats := SummaryStats(nnd)
	nbStats := SummaryStats(nbd)

	var q []float64
	for i := 0; i < s; i++ {
		if nbd[i] != 0 {
			q = append(q, nnd[i]/nbd[i])
		}
	}
	aveQ := mean(q, 0, len(q))
	qSD := stdDevAround(q, 0, len(q), aveQ) / aveQ

	indeg := make([]float64, s)
	for i := 0; i < s; i++ {
		if nb[i] != -1 {
			indeg[nb[i]]++
		}
	}

	nbc := [5]float64{
		nnStats.SD / nbStats.SD,
		nnStats.Mean / nbStats.Mean,
		pearsonFloored(nnd, nbd, nnStats.Mean, nbStats.Mean),
		qSD,
		-pearsonFloored(indeg, fits, mean(indeg, 0, s), mean(fits, 0, s)),
	}

	out := make([]float64, 0, 19)
	out = append(out, nnStats.Slice()...)
	out = append(out, nbStats.Slice()...)
	out = append(out, nbc[:]...)
	return out
}

// pearsonFloored computes the Pearson correlation in its identity form
// (productSum - n*avgX*avgY)/(sqrt(xDenom)*sqrt(yDenom)), flooring each
// denominator term at pearsonFloor to guard against rounding noise driving
// it to a tiny negative value.
func pearsonFloored(x, y []float64, avgX, avgY float64) float64 {
	n := len(x)
	var productSum, xSqrSum, ySqrSum float64
	for i := 0; i < n; i++ {
		productSum += x[i] * y[i]
		xSqrSum += x[i] * x[i]
		ySqrSum += y[i] * y[i]
	}
	xDenom := xSqrSum - float64(n)*avgX*avgX
	if xDenom < pearsonFloor {
		xDenom = pearsonFloor
	}
	yDenom := ySqrSum - float64(n)*avgY*avgY
	if yDenom < pearsonFloor {
		yDenom = pearsonFloor
	}
	return (productSum - float64(n)*avgX*avgY) / (sqrtf(xDenom) * sqrtf(yDenom))
}
