// File: methods_lookup.go
// Role: attribute lookups (linear scans in insertion order).
package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netanalyzer/entity"
)

// FindByName returns the first vertex, in insertion order, whose display name
// equals name ignoring case.
//
// Duplicate names are resolved by insertion order; use FindAllByName to
// detect ambiguity.
//
// Errors:
//   - ErrVertexNotFound if no vertex matches.
//
// Complexity: O(V)
func (g *Graph) FindByName(name string) (*Vertex, error) {
	return g.FindBy(entity.AttrName, name)
}

// FindBy returns the first vertex whose attribute equals value ignoring case.
func (g *Graph) FindBy(attr entity.Attribute, value string) (*Vertex, error) {
	for _, id := range g.order {
		v := g.vertices[id]
		if v.entity.Matches(attr, value) {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %q", ErrVertexNotFound, attr, strings.TrimSpace(value))
}

// FindAllByName returns every vertex whose name matches, in insertion order.
// The result is empty (never nil) when nothing matches.
func (g *Graph) FindAllByName(name string) []*Vertex {
	out := make([]*Vertex, 0, 1)
	for _, id := range g.order {
		v := g.vertices[id]
		if v.entity.Matches(entity.AttrName, name) {
			out = append(out, v)
		}
	}

	return out
}
