// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi style directed network.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - an RNG is required even for p ∈ {0,1} (else ErrNeedRandSource).
//   - ordered pairs (i,j), i≠j, are tried for i asc then j asc; each trial
//     draws the Bernoulli outcome and then, on success, the capacity.

package builder

import "github.com/katalvlaran/netflow/edgelist"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
)

// RandomSparse returns a Constructor that includes each ordered pair with
// probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(doc *edgelist.Document, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "use WithSeed or WithRand")
		}
		doc.Nodes = n

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					doc.Add(i, j, cfg.capacity())
				}
			}
		}

		return nil
	}
}
