// Package sampler generates synthetic optimiser traces by running particle
// swarm optimisation against a benchmark function, for exercising
// flscape.Characterize without a real optimiser run at hand.
package sampler

import (
	"math"

	//nolint:gosec // G404: math/rand/v2 drives swarm initialisation and velocity
	// jitter; reproducibility under a caller-supplied seed matters here, not
	// cryptographic unpredictability.
	"math/rand/v2"

	"github.com/flscape/flscape"
)

// Benchmark is a function to minimise, selected by name through
// Config.Benchmark rather than passed as a closure, so traces are
// reproducible from a config alone.
type Benchmark func(x []float64) float64

// Benchmarks are the named objective functions Config.Benchmark selects
// between. All three are standard global-optimisation test functions with a
// minimum of 0 at the origin.
var Benchmarks = map[string]Benchmark{
	"sphere":    sphere,
	"rastrigin": rastrigin,
	"ackley":    ackley,
}

func sphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func rastrigin(x []float64) float64 {
	const a = 10.0
	sum := a * float64(len(x))
	for _, v := range x {
		sum += v*v - a*math.Cos(2*math.Pi*v)
	}
	return sum
}

func ackley(x []float64) float64 {
	const a, b, c = 20.0, 0.2, 2 * math.Pi
	n := float64(len(x))
	var sumSq, sumCos float64
	for _, v := range x {
		sumSq += v * v
		sumCos += math.Cos(c * v)
	}
	return -a*math.Exp(-b*math.Sqrt(sumSq/n)) - math.Exp(sumCos/n) + a + math.E
}

// Config parameterises a PSO run.
type Config struct {
	Benchmark  string
	Dims       int
	Bounds     [2]float64 // same range applied to every dimension
	SwarmSize  int
	Iterations int
	Inertia    float64
	Cognitive  float64
	Social     float64
	Seed       int64
}

// DefaultConfig returns a Config with conventional PSO coefficients
// (inertia 0.7, cognitive/social 1.5), a swarm of 20 over 50 iterations.
func DefaultConfig(benchmark string, dims int, seed int64) Config {
	return Config{
		Benchmark:  benchmark,
		Dims:       dims,
		Bounds:     [2]float64{-5.12, 5.12},
		SwarmSize:  20,
		Iterations: 50,
		Inertia:    0.7,
		Cognitive:  1.5,
		Social:     1.5,
		Seed:       seed,
	}
}

type particle struct {
	position     []float64
	velocity     []float64
	bestPosition []float64
	bestFitness  float64
	fitness      float64
}

// Run executes PSO under cfg and returns a flscape.Input recording every
// iteration's global-best position/value and the full population snapshot
// at that iteration — unlike the PSO this is adapted from, which only
// returns the final global best.
func Run(cfg Config) (flscape.Input, error) {
	f, ok := Benchmarks[cfg.Benchmark]
	if !ok {
		return flscape.Input{}, ErrUnknownBenchmark
	}
	if cfg.SwarmSize <= 0 || cfg.Iterations <= 0 || cfg.Dims <= 0 {
		return flscape.Input{}, ErrInvalidConfig
	}

	src := rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed))
	rng := rand.New(src)

	lo, hi := cfg.Bounds[0], cfg.Bounds[1]
	swarm := make([]particle, cfg.SwarmSize)
	globalBest := make([]float64, cfg.Dims)
	globalBestFitness := math.Inf(1)

	for i := range swarm {
		pos := make([]float64, cfg.Dims)
		vel := make([]float64, cfg.Dims)
		for j := range pos {
			pos[j] = lo + rng.Float64()*(hi-lo)
			vel[j] = (rng.Float64() - 0.5) * (hi - lo)
		}
		fit := f(pos)
		swarm[i] = particle{
			position:     pos,
			velocity:     vel,
			bestPosition: append([]float64(nil), pos...),
			bestFitness:  fit,
			fitness:      fit,
		}
		if fit < globalBestFitness {
			globalBestFitness = fit
			copy(globalBest, pos)
		}
	}

	in := flscape.Input{
		Positions:  make([][]float64, 0, cfg.Iterations+1),
		Values:     make([]float64, 0, cfg.Iterations+1),
		Population: make([][][]float64, 0, cfg.Iterations+1),
		PopValues:  make([][]float64, 0, cfg.Iterations+1),
		PopSizes:   make([]int, 0, cfg.Iterations+1),
		Dims:       cfg.Dims,
		Seed:       cfg.Seed,
	}
	recordIteration(&in, swarm, globalBest, globalBestFitness)

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range swarm {
			for j := 0; j < cfg.Dims; j++ {
				r1, r2 := rng.Float64(), rng.Float64()
				swarm[i].velocity[j] = cfg.Inertia*swarm[i].velocity[j] +
					cfg.Cognitive*r1*(swarm[i].bestPosition[j]-swarm[i].position[j]) +
					cfg.Social*r2*(globalBest[j]-swarm[i].position[j])
				swarm[i].position[j] += swarm[i].velocity[j]
				if swarm[i].position[j] < lo {
					swarm[i].position[j] = lo
				}
				if swarm[i].position[j] > hi {
					swarm[i].position[j] = hi
				}
			}
			swarm[i].fitness = f(swarm[i].position)
			if swarm[i].fitness < swarm[i].bestFitness {
				swarm[i].bestFitness = swarm[i].fitness
				copy(swarm[i].bestPosition, swarm[i].position)
			}
			if swarm[i].fitness < globalBestFitness {
				globalBestFitness = swarm[i].fitness
				copy(globalBest, swarm[i].position)
			}
		}
		recordIteration(&in, swarm, globalBest, globalBestFitness)
	}

	return in, nil
}

func recordIteration(in *flscape.Input, swarm []particle, globalBest []float64, globalBestFitness float64) {
	in.Positions = append(in.Positions, append([]float64(nil), globalBest...))
	in.Values = append(in.Values, globalBestFitness)

	pop := make([][]float64, len(swarm))
	popVals := make([]float64, len(swarm))
	for i, p := range swarm {
		pop[i] = append([]float64(nil), p.position...)
		popVals[i] = p.fitness
	}
	in.Population = append(in.Population, pop)
	in.PopValues = append(in.PopValues, popVals)
	in.PopSizes = append(in.PopSizes, len(swarm))
}
