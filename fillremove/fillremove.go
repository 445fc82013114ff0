package fillremove

import (
	"sort"

	"github.com/katalvlaran/elimorder/graph"
)

// Record captures one eliminated vertex's neighborhood at the moment of its
// elimination, as returned by graph.Graph.Eliminate's clique value.
type Record struct {
	Vertex    int
	Iteration int
	Clique    []int
}

// hasPair reports whether both u and v appear in clique, which is assumed
// sorted ascending (graph.Graph.Eliminate returns it that way).
func hasPair(clique []int, u, v int) bool {
	foundU, foundV := false, false
	for _, w := range clique {
		if w == u {
			foundU = true
		}
		if w == v {
			foundV = true
		}
		if foundU && foundV {
			return true
		}
	}
	return false
}

// Run implements the redundant-fill-edge removal post-pass. A fill edge
// (u,v) introduced while eliminating vertex t is necessary - and therefore
// kept - iff some other eliminated vertex w != t has both u and v in its
// recorded elimination-time clique (records is indexed by Iteration, not by
// Vertex, since that is the stamp fill edges carry). Edges are processed in
// descending-iteration, then ascending-(u,v) order for deterministic
// output; the necessity test itself only reads fixed historical Clique
// snapshots, so it is independent of the scan order.
func Run(fillEdges []graph.FillEdge, records []Record) (kept, removed []graph.FillEdge) {
	if len(fillEdges) == 0 {
		return nil, nil
	}

	byIteration := make(map[int]Record, len(records))
	for _, r := range records {
		byIteration[r.Iteration] = r
	}

	ordered := make([]graph.FillEdge, len(fillEdges))
	copy(ordered, fillEdges)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Iteration != b.Iteration {
			return a.Iteration > b.Iteration
		}
		if a.U != b.U {
			return a.U < b.U
		}
		return a.V < b.V
	})

	kept = make([]graph.FillEdge, 0, len(ordered))
	removed = make([]graph.FillEdge, 0)

	for _, e := range ordered {
		creator := byIteration[e.Iteration].Vertex
		necessary := false
		for _, r := range records {
			if r.Vertex == creator {
				continue
			}
			if hasPair(r.Clique, e.U, e.V) {
				necessary = true
				break
			}
		}
		if necessary {
			kept = append(kept, e)
		} else {
			removed = append(removed, e)
		}
	}

	return kept, removed
}
