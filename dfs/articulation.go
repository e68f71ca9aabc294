package dfs

import (
	"fmt"

	"github.com/katalvlaran/netanalyzer/core"
)

// Frame phases of the iterative low-link walk.
const (
	phaseInit      = iota // number the vertex, load its neighbor list
	phaseEdges            // scan neighbors, descend into the first unvisited one
	phasePostChild        // child finished: fold its low value, test the cut condition
	phaseFinalize         // all neighbors scanned: root test, pop
)

// lowLinkFrame is one activation of the depth-first walk held on an explicit
// stack, so deep chains never grow the goroutine stack.
type lowLinkFrame struct {
	id        int64
	parent    int64
	hasParent bool
	nbrs      []int64
	next      int   // index of the next neighbor to scan
	children  int   // DFS-tree children discovered so far
	child     int64 // child being returned from in phasePostChild
	phase     int
}

// lowLinkRun is the traversal context of one Analyze call: the shared visit
// counter, the per-vertex scratch values, and the marked set. It is created
// fresh for every call, so no state survives between runs.
type lowLinkRun struct {
	g       *core.Graph
	counter int
	visit   map[int64]int
	low     map[int64]int
	marked  map[int64]bool
	res     *ArticulationResult
}

// Connectors returns the articulation vertices of g: vertices whose removal
// splits their connected component. Every component is analyzed; the result
// is deduplicated and ordered by when each vertex was first marked.
//
// Complexity: O(V + E)
func Connectors(g *core.Graph) ([]int64, error) {
	res, err := Analyze(g)
	if err != nil {
		return nil, err
	}

	return res.Points, nil
}

// Analyze runs the low-link walk over every component of g and returns the
// connectors together with the bridges, DFS roots and per-vertex scratch
// values.
//
// Rules, applied with one visit counter shared across all trees:
//   - a vertex gets visit = low = counter on first visit (1-based);
//   - the edge back to the immediate parent is skipped;
//   - an edge to an already visited vertex w lowers low(v) to visit(w);
//   - after a tree child c returns, low(v) = min(low(v), low(c)), and a
//     non-root v with low(c) >= visit(v) is a connector;
//   - a root is a connector iff it has more than one tree child.
func Analyze(g *core.Graph) (*ArticulationResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	run := &lowLinkRun{
		g:      g,
		visit:  make(map[int64]int, n),
		low:    make(map[int64]int, n),
		marked: make(map[int64]bool),
		res: &ArticulationResult{
			Points: []int64{},
		},
	}
	for _, id := range g.IDs() {
		if run.visit[id] != 0 {
			continue
		}
		run.res.Roots = append(run.res.Roots, id)
		if err := run.walk(id); err != nil {
			return nil, err
		}
	}
	run.res.VisitOrder = run.visit
	run.res.Low = run.low

	return run.res, nil
}

// mark records id as a connector once, preserving first-marked order.
func (r *lowLinkRun) mark(id int64) {
	if r.marked[id] {
		return
	}
	r.marked[id] = true
	r.res.Points = append(r.res.Points, id)
}

// walk processes the DFS tree rooted at root.
func (r *lowLinkRun) walk(root int64) error {
	stack := []lowLinkFrame{{id: root, phase: phaseInit}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		switch f.phase {
		case phaseInit:
			r.counter++
			r.visit[f.id] = r.counter
			r.low[f.id] = r.counter
			nbrs, err := r.g.Neighbors(f.id)
			if err != nil {
				return fmt.Errorf("dfs: Neighbors(%d): %w", f.id, err)
			}
			f.nbrs = nbrs
			f.phase = phaseEdges

		case phaseEdges:
			descended := false
			for f.next < len(f.nbrs) {
				w := f.nbrs[f.next]
				f.next++
				if f.hasParent && w == f.parent {
					continue
				}
				if r.visit[w] == 0 {
					// tree edge: suspend f, descend into w
					f.children++
					f.child = w
					f.phase = phasePostChild
					descended = true
					stack = append(stack, lowLinkFrame{id: w, parent: f.id, hasParent: true, phase: phaseInit})
					break
				}
				// back edge
				if r.visit[w] < r.low[f.id] {
					r.low[f.id] = r.visit[w]
				}
			}
			if !descended {
				f.phase = phaseFinalize
			}

		case phasePostChild:
			if r.low[f.child] < r.low[f.id] {
				r.low[f.id] = r.low[f.child]
			}
			if f.hasParent && r.low[f.child] >= r.visit[f.id] {
				r.mark(f.id)
			}
			if r.low[f.child] > r.visit[f.id] {
				r.res.Bridges = append(r.res.Bridges, normalizedEdge(f.id, f.child))
			}
			f.phase = phaseEdges

		case phaseFinalize:
			if !f.hasParent && f.children > 1 {
				r.mark(f.id)
			}
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}

func normalizedEdge(a, b int64) core.Edge {
	if a > b {
		a, b = b, a
	}

	return core.Edge{From: a, To: b}
}
