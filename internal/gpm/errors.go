package gpm

import "errors"

var (
	// ErrMissingField marks a load record without a required key.
	ErrMissingField = errors.New("required field missing")

	// ErrLogBase marks a logbase that cannot transform phenotypes.
	ErrLogBase = errors.New("logbase is not callable")

	// ErrMissingRaw marks log-space uncertainty requested before the raw
	// snapshot exists.
	ErrMissingRaw = errors.New("raw view must exist before log-space uncertainty")

	// ErrLengthMismatch marks an array that disagrees with the genotype count.
	ErrLengthMismatch = errors.New("array length does not match genotype count")

	// ErrUnknownGenotype marks a genotype lookup outside the map.
	ErrUnknownGenotype = errors.New("genotype is not in the map")

	// ErrFraction marks a sampling fraction outside [0, 1].
	ErrFraction = errors.New("fraction must lie in [0, 1]")

	// ErrNoUncertainty marks replicate sampling without an error
	// distribution to draw from.
	ErrNoUncertainty = errors.New("no uncertainty distribution to sample from")
)
