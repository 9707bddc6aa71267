package flscape

import "errors"

var (
	// ErrNotEvaluated is returned when a Point's objective value is read before it has been set.
	ErrNotEvaluated = errors.New("flscape: point has not been evaluated")

	// ErrDimensionMismatch is returned when two points of differing length are compared.
	ErrDimensionMismatch = errors.New("flscape: dimension mismatch between points")

	// ErrEmptyPopulation is returned when a population snapshot has zero members where one is required.
	ErrEmptyPopulation = errors.New("flscape: population snapshot is empty")

	// ErrEmptyTrace is returned when an operation requires at least one point and the trace has none.
	ErrEmptyTrace = errors.New("flscape: trace has no points")

	// ErrSampleTooSmall is returned by Pairwise when the elite subset (floor(0.15*n)) has fewer than two points.
	ErrSampleTooSmall = errors.New("flscape: sample too small for pairwise dispersion/NBC features")
)
