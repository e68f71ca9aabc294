package core

// LinkOneWay appends to to from's neighbor list without the mirror entry and
// without touching edgeCount. It exists only to build asymmetric states for
// tests of the defensive cleanup paths.
func LinkOneWay(g *Graph, from, to int64) {
	if v, ok := g.vertices[from]; ok {
		v.neighbors = append(v.neighbors, to)
	}
}
