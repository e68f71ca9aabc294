package dijkstra

import "github.com/katalvlaran/netanalyzer/core"

// Distances returns the hop distance from source to every vertex of g, with
// Unreachable for vertices in other components.
func Distances(g *core.Graph, source int64) (map[int64]int, error) {
	dist, _, err := Dijkstra(g, Source(source))

	return dist, err
}

// Closeness returns Σ 1/d over every vertex at finite, non-zero distance d
// from source. An isolated source scores 0.
//
// Complexity: O((V + E) log V)
func Closeness(g *core.Graph, source int64) (float64, error) {
	s, err := ClosenessOf(g, source)

	return s.Raw, err
}

// Normalize divides a raw closeness by vertexCount−1. Graphs with at most one
// vertex normalize to 0.
func Normalize(raw float64, vertexCount int) float64 {
	if vertexCount <= 1 {
		return 0
	}

	return raw / float64(vertexCount-1)
}

// ClosenessOf computes both the raw and the normalized closeness of source.
func ClosenessOf(g *core.Graph, source int64) (Score, error) {
	dist, err := Distances(g, source)
	if err != nil {
		return Score{}, err
	}

	s := Score{ID: source}
	// sum in insertion order so the float result is reproducible
	for _, id := range g.IDs() {
		d := dist[id]
		if d > 0 {
			s.Raw += 1 / float64(d)
			s.Reachable++
		}
	}
	s.Normalized = Normalize(s.Raw, g.VertexCount())

	return s, nil
}
