// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// validators.go - shared parameter checks.

package builder

const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
