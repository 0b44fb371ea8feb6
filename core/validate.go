// File: validate.go
// Role: Structural validation of a Graph before search.

package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the graph for every precondition shortest-path search
// relies on and reports all violations together:
//
//   - ErrEmptyNodeID    a node with ID "".
//   - ErrDuplicateNode  two nodes sharing one ID.
//   - ErrDanglingEdge   an edge endpoint missing from the node collection.
//   - ErrNegativeWeight an edge with weight < 0.
//
// The returned error is a *multierror.Error whose entries wrap the sentinels
// above, so errors.Is works against each of them. A valid graph returns nil.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	var result *multierror.Error

	seen := make(map[string]struct{}, len(g.nodes))
	for i, n := range g.nodes {
		if n.ID == "" {
			result = multierror.Append(result, fmt.Errorf("%w: node #%d", ErrEmptyNodeID, i))
			continue
		}
		if _, dup := seen[n.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("%w: %q at #%d", ErrDuplicateNode, n.ID, i))
			continue
		}
		seen[n.ID] = struct{}{}
	}

	for i, e := range g.edges {
		if _, ok := seen[e.From.ID]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: edge %q (#%d) source %q", ErrDanglingEdge, e.ID, i, e.From.ID))
		}
		if _, ok := seen[e.To.ID]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: edge %q (#%d) destination %q", ErrDanglingEdge, e.ID, i, e.To.ID))
		}
		if e.Weight < 0 {
			result = multierror.Append(result, fmt.Errorf("%w: edge %q %s→%s weight=%d", ErrNegativeWeight, e.ID, e.From.ID, e.To.ID, e.Weight))
		}
	}

	return result.ErrorOrNil()
}
