package core_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/entity"
)

// op is one random mutation applied to a graph: kind 0 adds an edge,
// kind 1 removes an edge, kind 2 deletes a vertex.
type op struct {
	Kind int
	U, V int64
}

const propVertexCount = 8

func genOp() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 2),
		gen.Int64Range(0, propVertexCount-1),
		gen.Int64Range(0, propVertexCount-1),
	).Map(func(vals []interface{}) op {
		return op{Kind: vals[0].(int), U: vals[1].(int64), V: vals[2].(int64)}
	})
}

func seededGraph() *core.Graph {
	g := core.NewGraph()
	for i := int64(0); i < propVertexCount; i++ {
		g.AddVertex(entity.New(i, "n", "g", "U", "c"))
	}

	return g
}

// TestGraphInvariants uses property-based testing to verify that edgeCount
// stays equal to the number of symmetric pairs under any mutation sequence.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("edgeCount matches symmetric pairs after every mutation", prop.ForAll(
		func(ops []op) bool {
			g := seededGraph()
			for _, o := range ops {
				switch o.Kind {
				case 0:
					g.AddEdge(o.U, o.V)
				case 1:
					g.RemoveEdge(o.U, o.V)
				default:
					_, _ = g.DeleteVertex(o.U)
				}
				if g.Verify() != nil {
					return false
				}
			}

			return true
		},
		gen.SliceOf(genOp()),
	))

	properties.Property("deleting a vertex of degree k removes exactly k edges", prop.ForAll(
		func(ops []op, victim int64) bool {
			g := seededGraph()
			for _, o := range ops {
				g.AddEdge(o.U, o.V)
			}
			before := g.EdgeCount()
			k, _ := g.Degree(victim)
			removed, err := g.DeleteVertex(victim)
			if err != nil || removed != k {
				return false
			}
			for _, v := range g.Vertices() {
				if v.Degree() > 0 {
					for _, n := range v.NeighborIDs() {
						if n == victim {
							return false
						}
					}
				}
			}

			return g.EdgeCount() == before-k && g.Verify() == nil
		},
		gen.SliceOf(genOp()),
		gen.Int64Range(0, propVertexCount-1),
	))

	properties.Property("add then remove restores the edge count", prop.ForAll(
		func(u, v int64) bool {
			g := seededGraph()
			before := g.EdgeCount()
			added := g.AddEdge(u, v)
			removed := g.RemoveEdge(u, v)

			return added == removed && added == (u != v) && g.EdgeCount() == before
		},
		gen.Int64Range(0, propVertexCount-1),
		gen.Int64Range(0, propVertexCount-1),
	))

	properties.TestingRun(t)
}
