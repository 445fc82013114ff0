package graph_test

import (
	"testing"

	"github.com/katalvlaran/elimorder/graph"
	"github.com/stretchr/testify/require"
)

func logKAllTwo(n int) []float64 {
	lk := make([]float64, n)
	for i := range lk {
		lk[i] = 0.6931471805599453 // ln(2)
	}
	return lk
}

func mustGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(n, logKAllTwo(n))
	require.NoError(t, err)
	return g
}

func TestNewGraphValidation(t *testing.T) {
	_, err := graph.NewGraph(0, nil)
	require.ErrorIs(t, err, graph.ErrInvalidVertexCount)

	_, err = graph.NewGraph(2, []float64{1})
	require.ErrorIs(t, err, graph.ErrDomainSizeMismatch)

	_, err = graph.NewGraph(1, []float64{-1})
	require.ErrorIs(t, err, graph.ErrNonPositiveDomain)
}

func TestAddEdgeRejectsSelfLoopAndOutOfRange(t *testing.T) {
	g := mustGraph(t, 3)
	require.ErrorIs(t, g.AddEdge(0, 0), graph.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 5), graph.ErrVertexOutOfRange)
}

func TestAddEdgeIsSymmetricAndIdempotent(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1))
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))

	// Re-adding is a no-op: degree must not double.
	require.NoError(t, g.AddEdge(0, 1))
	require.Equal(t, 1, g.Degree(0))
}

func TestNeighborIDsSortedAscending(t *testing.T) {
	g := mustGraph(t, 5)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 4))
	require.NoError(t, g.AddEdge(0, 2))

	require.Equal(t, []int{1, 2, 3, 4}, g.NeighborIDs(0))
}

// TestFourCycleFillScore exercises a 4-cycle where every vertex starts
// with degree 2 and fill-score 1 (its two neighbors are not directly
// connected).
func TestFourCycleFillScore(t *testing.T) {
	g := mustGraph(t, 4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))

	for v := 0; v < 4; v++ {
		require.Equal(t, 2, g.Degree(v), "vertex %d degree", v)
		require.Equal(t, 1, g.FillScore(v), "vertex %d fillScore", v)
	}
}

// TestK4FillScoreIsZero checks that a complete graph on 4 vertices has
// fill-score 0 everywhere (every pair of neighbors already connected).
func TestK4FillScoreIsZero(t *testing.T) {
	g := mustGraph(t, 4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}
	for v := 0; v < 4; v++ {
		require.Equal(t, 3, g.Degree(v))
		require.Equal(t, 0, g.FillScore(v))
	}
}

func TestEliminateLeafProducesNoFillEdges(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	added, clique, iter, err := g.Eliminate(0)
	require.NoError(t, err)
	require.Empty(t, added)
	require.Equal(t, []int{1}, clique)
	require.Equal(t, 0, iter)
	require.True(t, g.Ordered(0))
	require.Equal(t, 1, g.Degree(1))
	require.False(t, g.HasEdge(0, 1))
}

// TestEliminateTriangulatesFourCycle checks that eliminating vertex 0 of a
// 4-cycle (neighbors 1 and 3, not directly connected) triangulates the
// graph by adding fill edge (1,3).
func TestEliminateTriangulatesFourCycle(t *testing.T) {
	g := mustGraph(t, 4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))

	added, clique, _, err := g.Eliminate(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, clique)
	require.Len(t, added, 1)
	require.Equal(t, graph.FillEdge{U: 1, V: 3, Iteration: 0}, added[0])
	require.True(t, g.HasEdge(1, 3))

	// Remaining graph is now a triangle 1-2-3: fill-score 0 everywhere.
	require.Equal(t, 0, g.FillScore(1))
	require.Equal(t, 0, g.FillScore(2))
	require.Equal(t, 0, g.FillScore(3))
}

func TestEliminateAlreadyOrderedVertexFails(t *testing.T) {
	g := mustGraph(t, 2)
	require.NoError(t, g.AddEdge(0, 1))
	_, _, _, err := g.Eliminate(0)
	require.NoError(t, err)

	_, _, _, err = g.Eliminate(0)
	require.ErrorIs(t, err, graph.ErrAlreadyOrdered)
}

func TestDrainReturnsChangedVerticesOnce(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1))

	changed := g.Drain()
	require.ElementsMatch(t, []int{0, 1}, changed)

	// Nothing changed since the last drain.
	require.Empty(t, g.Drain())
}

// TestFillScoreMatchesBruteForce is a property check: for a handful of
// small random-ish graphs, fillScore(v) must equal an explicit count of
// missing pairs among v's current neighbors.
func TestFillScoreMatchesBruteForce(t *testing.T) {
	g := mustGraph(t, 6)
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {3, 4}, {4, 5}, {2, 5}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	for v := 0; v < 6; v++ {
		nbrs := g.NeighborIDs(v)
		want := 0
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if !g.HasEdge(nbrs[i], nbrs[j]) {
					want++
				}
			}
		}
		require.Equalf(t, want, g.FillScore(v), "vertex %d", v)
	}
}

// TestRemoveEdgeIsInverseOfAddEdge checks that removing an edge restores
// the degree and fill-score every affected vertex had before it was added.
func TestRemoveEdgeIsInverseOfAddEdge(t *testing.T) {
	g := mustGraph(t, 4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))
	require.NoError(t, g.AddEdge(0, 2)) // closes both triangles of the 4-cycle

	require.Equal(t, 1, g.FillScore(0))
	require.Equal(t, 1, g.FillScore(2))
	require.Equal(t, 0, g.FillScore(1))
	require.Equal(t, 0, g.FillScore(3))

	require.NoError(t, g.RemoveEdge(0, 2))
	require.False(t, g.HasEdge(0, 2))
	for v := 0; v < 4; v++ {
		require.Equal(t, 2, g.Degree(v), "vertex %d degree", v)
		require.Equal(t, 1, g.FillScore(v), "vertex %d fillScore", v)
	}
}

func TestRemoveEdgeIsNoOpWhenMissing(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.RemoveEdge(1, 2))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
	require.Equal(t, 0, g.Degree(2))
}

func TestRemoveEdgeRejectsSelfLoopAndOutOfRange(t *testing.T) {
	g := mustGraph(t, 3)
	require.ErrorIs(t, g.RemoveEdge(0, 0), graph.ErrSelfLoop)
	require.ErrorIs(t, g.RemoveEdge(0, 5), graph.ErrVertexOutOfRange)
}
