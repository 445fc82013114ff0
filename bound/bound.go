package bound

import (
	"container/heap"

	"github.com/katalvlaran/elimorder/graph"
)

// nodeItem represents a vertex and its degree at the time it was pushed.
// It is stored in the priority queue to order vertices by increasing degree.
type nodeItem struct {
	vertex int
	degree int
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.degree ascending.
// Degree decreases use the lazy-decrease-key approach: when a neighbor's
// degree drops, a fresh *nodeItem is pushed; the stale entry is left in
// place and discarded when popped, by comparing its snapshot degree against
// the vertex's current degree.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].degree < pq[j].degree }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// LowerBound computes a fast heuristic lower bound on induced width by
// min-degree peeling a throwaway adjacency-set copy of g's currently live
// (not yet eliminated) vertices: repeatedly remove the minimum-degree
// vertex, record its degree, and update its neighbors' degrees, until none
// remain. The maximum degree recorded is the bound. This never
// mutates g.
func LowerBound(g *graph.Graph) int {
	n := g.N()
	adj := make([]map[int]struct{}, n)
	degree := make([]int, n)
	removed := make([]bool, n)

	pq := &nodePQ{}
	heap.Init(pq)

	for v := 0; v < n; v++ {
		if g.Ordered(v) {
			removed[v] = true
			continue
		}
		neighbors := g.NeighborIDs(v)
		set := make(map[int]struct{}, len(neighbors))
		for _, w := range neighbors {
			if !g.Ordered(w) {
				set[w] = struct{}{}
			}
		}
		adj[v] = set
		degree[v] = len(set)
		heap.Push(pq, &nodeItem{vertex: v, degree: degree[v]})
	}

	maxDegree := 0
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		v := item.vertex
		if removed[v] || item.degree != degree[v] {
			continue // stale entry: already finalized, or superseded by a later decrease-key push
		}
		removed[v] = true
		if degree[v] > maxDegree {
			maxDegree = degree[v]
		}

		for w := range adj[v] {
			delete(adj[w], v)
			degree[w]--
			heap.Push(pq, &nodeItem{vertex: w, degree: degree[w]})
		}
	}

	return maxDegree
}
