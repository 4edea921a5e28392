// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// api.go - the Constructor type and the Build entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netflow/edgelist"
)

// Constructor appends one topology to doc. Implementations validate their
// parameters, set doc.Nodes and emit triples in a fixed order.
type Constructor func(doc *edgelist.Document, cfg builderConfig) error

// Build resolves opts and applies c to a fresh document. The result is
// validated the same way a parsed file would be.
func Build(c Constructor, opts ...BuilderOption) (*edgelist.Document, error) {
	if c == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	doc := &edgelist.Document{}
	if err := c(doc, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return doc, nil
}
