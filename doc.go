// Package flscape computes a fixed-length numerical fingerprint — a
// fitness-landscape characterization vector — from the trace of a
// metaheuristic optimiser.
//
// Given the per-iteration best-so-far point (with its objective value) and,
// optionally, the per-iteration population considered alongside it, Characterize
// produces a vector of scalar features describing the shape of the
// optimisation landscape: ruggedness, neutrality, gradient statistics, funnel
// structure, dispersion among the elite, entropic directional change,
// stagnation regions, diversity evolution, and per-dimension positional
// statistics.
//
// The package is a pure function from trace to feature vector: it is
// single-threaded, synchronous, performs no I/O, and holds no state across
// calls. Callers seed the package's RNG explicitly; given the same trace and
// seed, Characterize returns bitwise-identical output.
package flscape
