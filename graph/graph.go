package graph

import (
	"math"

	"github.com/katalvlaran/elimorder/pool"
)

// Graph is the mutable primal graph operated on by the ordering engine.
// It is not safe for concurrent mutation.
type Graph struct {
	n         int
	vertices  []vertexState
	pool      *pool.Pool
	iteration int
	order     []int
	fillEdges []FillEdge

	// nextBuildStamp is the next iteration value AddEdge will stamp an
	// original edge with. It starts comfortably below -(n choose 2) and
	// counts up by one per call, so every original edge gets a distinct
	// stamp that is strictly less than every later original edge's stamp
	// while still satisfying the "iteration < 0 -> original edge" convention
	// that separates original edges from Eliminate's fill edges.
	nextBuildStamp int

	changed   []int
	inChanged []bool
}

// NewGraph allocates a Graph over n vertices with per-vertex domain sizes
// given in log space (logK[v] = log(|domain(v)|), natural or base-10 per
// the caller's convention - see problem.LogBase). No edges are present
// initially; build the primal graph with AddEdge.
func NewGraph(n int, logK []float64, opts ...Option) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidVertexCount
	}
	if len(logK) != n {
		return nil, ErrDomainSizeMismatch
	}
	for _, lk := range logK {
		if math.IsNaN(lk) || math.IsInf(lk, 0) || lk < 0 {
			return nil, ErrNonPositiveDomain
		}
	}

	cfg := config{poolCapacity: 2 * n}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.poolCapacity <= 0 {
		cfg.poolCapacity = 2 * n
	}
	if cfg.extend == nil {
		// A simple graph on n vertices never holds more than n(n-1)
		// half-edges at once and released records are reused, so n blocks
		// of 2n records on top of the initial capacity always suffice.
		block := 2 * n
		cfg.extend = func() ([]pool.Record, error) { return make([]pool.Record, block), nil }
		cfg.maxBlocks = n
	}

	p, err := pool.NewPool(cfg.poolCapacity, cfg.extend, cfg.maxBlocks)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		n:              n,
		vertices:       make([]vertexState, n),
		pool:           p,
		order:          make([]int, 0, n),
		fillEdges:      make([]FillEdge, 0),
		nextBuildStamp: -(n*(n-1)/2 + 1),
		changed:        make([]int, 0, n),
		inChanged:      make([]bool, n),
	}
	for v := 0; v < n; v++ {
		g.vertices[v] = vertexState{
			logK:      logK[v],
			elimScore: logK[v],
			head:      pool.NilIndex,
		}
	}

	return g, nil
}

// N returns the number of vertices the graph was constructed with.
func (g *Graph) N() int { return g.n }

// Degree returns the current neighbor count of v.
func (g *Graph) Degree(v int) int { return g.vertices[v].degree }

// FillScore returns the current exact min-fill count of v.
func (g *Graph) FillScore(v int) int { return g.vertices[v].fillScore }

// ElimScore returns logK(v) + Σ logK(neighbors of v).
func (g *Graph) ElimScore(v int) float64 { return g.vertices[v].elimScore }

// LogK returns the log-domain-size of v.
func (g *Graph) LogK(v int) float64 { return g.vertices[v].logK }

// Ordered reports whether v has already been eliminated.
func (g *Graph) Ordered(v int) bool { return g.vertices[v].ordered }

// Order returns the prefix of vertices eliminated so far, in elimination order.
func (g *Graph) Order() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)
	return out
}

// FillEdges returns every fill edge added so far, in insertion order.
func (g *Graph) FillEdges() []FillEdge {
	out := make([]FillEdge, len(g.fillEdges))
	copy(out, g.fillEdges)
	return out
}

// Iteration returns the number of eliminations performed so far.
func (g *Graph) Iteration() int { return g.iteration }

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}
	return nil
}

// markChanged records v in the score-change set, deduplicated within the
// current iteration.
func (g *Graph) markChanged(v int) {
	if g.inChanged[v] {
		return
	}
	g.inChanged[v] = true
	g.changed = append(g.changed, v)
}

// Drain returns every vertex whose fillScore changed since the last Drain
// call (or since construction) and resets the change set. The ordering
// engine's partition reclassifier visits exactly this set after each
// elimination.
func (g *Graph) Drain() []int {
	out := g.changed
	for _, v := range out {
		g.inChanged[v] = false
	}
	g.changed = make([]int, 0, len(out))
	return out
}

// NeighborIDs returns v's current neighbors, sorted ascending.
func (g *Graph) NeighborIDs(v int) []int {
	out := make([]int, 0, g.vertices[v].degree)
	for idx := g.vertices[v].head; idx != pool.NilIndex; {
		rec := g.pool.At(idx)
		out = append(out, rec.Neighbor)
		idx = rec.Next
	}
	return out
}

// HasEdge reports whether u and v are currently adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, found := g.findRecord(u, v)
	return found
}

// findRecord walks u's sorted neighbor list looking for v, returning the
// record index and whether it was found. Lists are sorted ascending so the
// walk stops early once past v.
func (g *Graph) findRecord(u, v int) (int, bool) {
	idx := g.vertices[u].head
	for idx != pool.NilIndex {
		rec := g.pool.At(idx)
		if rec.Neighbor == v {
			return idx, true
		}
		if rec.Neighbor > v {
			return pool.NilIndex, false
		}
		idx = rec.Next
	}
	return pool.NilIndex, false
}

// insertSorted splices a new record for neighbor w (stamped with iteration)
// into u's sorted neighbor list and returns the new record's index.
func (g *Graph) insertSorted(u, w, iteration int) (int, error) {
	idx, err := g.pool.Acquire(w, iteration)
	if err != nil {
		return pool.NilIndex, err
	}

	head := g.vertices[u].head
	if head == pool.NilIndex || g.pool.At(head).Neighbor > w {
		g.pool.SetNext(idx, head)
		g.vertices[u].head = idx
		return idx, nil
	}

	prev := head
	for {
		rec := g.pool.At(prev)
		if rec.Next == pool.NilIndex || g.pool.At(rec.Next).Neighbor > w {
			g.pool.SetNext(idx, rec.Next)
			g.pool.SetNext(prev, idx)
			return idx, nil
		}
		prev = rec.Next
	}
}

// removeSorted splices w's record out of u's sorted neighbor list and
// releases it back to the pool. Returns false if w was not present.
func (g *Graph) removeSorted(u, w int) bool {
	idx := g.vertices[u].head
	if idx == pool.NilIndex {
		return false
	}

	if g.pool.At(idx).Neighbor == w {
		g.vertices[u].head = g.pool.At(idx).Next
		g.pool.Release(idx)
		return true
	}

	prev := idx
	cur := g.pool.At(prev).Next
	for cur != pool.NilIndex {
		rec := g.pool.At(cur)
		if rec.Neighbor == w {
			g.pool.SetNext(prev, rec.Next)
			g.pool.Release(cur)
			return true
		}
		prev = cur
		cur = rec.Next
	}
	return false
}

// AddEdge inserts the original (non-fill) edge u-v into the primal graph
// being built, prior to any elimination. It is a no-op if the edge already
// exists. Each original edge is stamped with its own negative, strictly
// increasing build-order value (see nextBuildStamp).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.vertices[u].ordered || g.vertices[v].ordered {
		return ErrAlreadyOrdered
	}
	if g.HasEdge(u, v) {
		return nil
	}

	stamp := g.nextBuildStamp
	g.nextBuildStamp++
	return g.addEdgeInternal(u, v, stamp)
}

// RemoveEdge deletes edge u-v from the primal graph if present, keeping
// degree, elimScore, and fillScore consistent for both endpoints and every
// affected common neighbor. It is a no-op if the edge does not exist.
//
// This is independent of Eliminate's own edge removal: Eliminate already
// knows the full clique being removed and adjusts fillScore for it in one
// pass via updateFillScoreOnEliminate, so its internal removeEdgeInternal
// calls skip fillScore entirely. RemoveEdge has no clique context, so it
// runs updateFillScoreOnRemove itself before splicing the edge out.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.vertices[u].ordered || g.vertices[v].ordered {
		return ErrAlreadyOrdered
	}
	if !g.HasEdge(u, v) {
		return nil
	}

	g.updateFillScoreOnRemove(u, v)
	g.removeEdgeInternal(u, v)
	g.markChanged(u)
	g.markChanged(v)

	return nil
}

// addEdgeInternal inserts edge (u,v) stamped with iteration and runs the
// incremental fill-score update (score.go). No-op if the edge exists.
func (g *Graph) addEdgeInternal(u, v, iteration int) error {
	if g.HasEdge(u, v) {
		return nil
	}

	if _, err := g.insertSorted(u, v, iteration); err != nil {
		return err
	}
	if _, err := g.insertSorted(v, u, iteration); err != nil {
		// Best-effort symmetry: undo the half we already inserted so the
		// graph never ends up with a dangling one-sided edge.
		g.removeSorted(u, v)
		return err
	}

	g.vertices[u].degree++
	g.vertices[v].degree++
	g.vertices[u].elimScore += g.vertices[v].logK
	g.vertices[v].elimScore += g.vertices[u].logK

	g.updateFillScoreOnAdd(u, v, iteration)
	g.markChanged(u)
	g.markChanged(v)

	return nil
}

// removeEdgeInternal splices out both halves of edge (u,v) and updates
// degree and elimScore for both endpoints, releasing the records. It does
// not touch fillScore: when removing one of the eliminated vertex's
// incident edges, the neighbor-side fillScore delta is handled up front by
// updateFillScoreOnEliminate, which needs the full clique to decide which
// neighbors are exclusive (see score.go).
func (g *Graph) removeEdgeInternal(u, v int) {
	if !g.removeSorted(u, v) {
		return
	}
	g.removeSorted(v, u)

	g.vertices[u].degree--
	g.vertices[v].degree--
	g.vertices[u].elimScore -= g.vertices[v].logK
	g.vertices[v].elimScore -= g.vertices[u].logK
}

// Eliminate simulates elimination of vertex v: every missing pair among v's
// current neighbors becomes a fill edge stamped with the graph's current
// iteration counter, then v is spliced out of every neighbor's list and
// marked Ordered. Returns the fill edges added, the clique (v's neighbor
// set immediately before removal, sorted ascending) for fillremove
// bookkeeping, and the iteration this elimination was stamped with.
func (g *Graph) Eliminate(v int) (added []FillEdge, clique []int, iteration int, err error) {
	if err = g.checkVertex(v); err != nil {
		return nil, nil, 0, err
	}
	if g.vertices[v].ordered {
		return nil, nil, 0, ErrAlreadyOrdered
	}

	iteration = g.iteration
	clique = g.NeighborIDs(v)
	added = make([]FillEdge, 0, pool.WorstCaseFill(len(clique)))

	for i := 0; i < len(clique); i++ {
		for j := i + 1; j < len(clique); j++ {
			a, b := clique[i], clique[j]
			if g.HasEdge(a, b) {
				continue
			}
			if err = g.addEdgeInternal(a, b, iteration); err != nil {
				return nil, nil, 0, err
			}
			fe := FillEdge{U: a, V: b, Iteration: iteration}
			added = append(added, fe)
			g.fillEdges = append(g.fillEdges, fe)
		}
	}

	g.updateFillScoreOnEliminate(v, clique)
	for _, w := range clique {
		g.removeEdgeInternal(v, w)
		g.markChanged(w)
	}

	g.vertices[v].ordered = true
	g.vertices[v].degree = 0
	g.vertices[v].fillScore = 0
	g.order = append(g.order, v)
	g.iteration++

	return added, clique, iteration, nil
}
