package sampler

import "errors"

var (
	// ErrUnknownBenchmark is returned when Config.Benchmark does not name
	// an entry in Benchmarks.
	ErrUnknownBenchmark = errors.New("sampler: unknown benchmark function")

	// ErrInvalidConfig is returned when swarm size, iteration count, or
	// dimensionality is non-positive.
	ErrInvalidConfig = errors.New("sampler: swarm size, iterations, and dims must be positive")
)
