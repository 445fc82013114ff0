package graph

import "github.com/katalvlaran/elimorder/pool"

// updateFillScoreOnAdd applies the incremental fill-score update for a
// newly inserted edge (u,v) stamped with iteration. It is called once per
// addEdgeInternal, after both halves of the edge are already spliced into
// their sorted neighbor lists.
//
// Starting from an edgeless graph and adding every original edge through
// AddEdge reproduces the correct initial fillScore for every vertex, one
// edge at a time; no separate from-scratch recompute is needed.
//
// The merge-walk visits N(u) and N(v) (both already include each other)
// in lockstep, since they are kept sorted ascending:
//
//   - w present only in N(u), w != v: the pair (v,w) in u's neighborhood
//     newly becomes observable -> fillScore(u)++.
//   - w present only in N(v), w != u: symmetrically -> fillScore(v)++.
//   - w present in both, w != u, w != v: the pair (u,v) in w's
//     neighborhood is now satisfied -> fillScore(w)--. The walk runs once
//     per edge, so each common neighbor is decremented exactly once,
//     whichever endpoint is passed as u. The iteration stamps are not
//     consulted: fill edges added earlier in the same Eliminate call count
//     as present, exactly like original edges.
func (g *Graph) updateFillScoreOnAdd(u, v, iteration int) {
	iu := g.vertices[u].head
	iv := g.vertices[v].head

	for iu != pool.NilIndex && iv != pool.NilIndex {
		ru := g.pool.At(iu)
		rv := g.pool.At(iv)

		switch {
		case ru.Neighbor == rv.Neighbor:
			w := ru.Neighbor
			if w != u && w != v {
				g.vertices[w].fillScore--
				g.markChanged(w)
			}
			iu = ru.Next
			iv = rv.Next
		case ru.Neighbor < rv.Neighbor:
			if ru.Neighbor != v {
				g.vertices[u].fillScore++
				g.markChanged(u)
			}
			iu = ru.Next
		default:
			if rv.Neighbor != u {
				g.vertices[v].fillScore++
				g.markChanged(v)
			}
			iv = rv.Next
		}
	}

	for iu != pool.NilIndex {
		ru := g.pool.At(iu)
		if ru.Neighbor != v {
			g.vertices[u].fillScore++
			g.markChanged(u)
		}
		iu = ru.Next
	}
	for iv != pool.NilIndex {
		rv := g.pool.At(iv)
		if rv.Neighbor != u {
			g.vertices[v].fillScore++
			g.markChanged(v)
		}
		iv = rv.Next
	}
}

// updateFillScoreOnRemove applies the incremental fill-score update for
// edge (u,v) being removed via the standalone RemoveEdge path. It must run
// before the edge is spliced out of either neighbor list, since the merge
// walk needs both endpoints' full current neighbor sets (each other
// included) to find the affected common and exclusive neighbors. This is
// the inverse of updateFillScoreOnAdd, with increments and decrements
// swapped.
//
//   - w present only in N(u), w != v: the pair (v,w) stops being observable
//     from u once (u,v) is gone -> fillScore(u)--.
//   - w present only in N(v), w != u: symmetrically -> fillScore(v)--.
//   - w present in both, w != u, w != v: (u,v) was satisfying w's view of
//     that pair; once gone it becomes a missing pair again -> fillScore(w)++,
//     once per common neighbor, whichever endpoint is passed as u.
func (g *Graph) updateFillScoreOnRemove(u, v int) {
	iu := g.vertices[u].head
	iv := g.vertices[v].head

	for iu != pool.NilIndex && iv != pool.NilIndex {
		ru := g.pool.At(iu)
		rv := g.pool.At(iv)

		switch {
		case ru.Neighbor == rv.Neighbor:
			w := ru.Neighbor
			if w != u && w != v {
				g.vertices[w].fillScore++
				g.markChanged(w)
			}
			iu = ru.Next
			iv = rv.Next
		case ru.Neighbor < rv.Neighbor:
			if ru.Neighbor != v {
				g.vertices[u].fillScore--
				g.markChanged(u)
			}
			iu = ru.Next
		default:
			if rv.Neighbor != u {
				g.vertices[v].fillScore--
				g.markChanged(v)
			}
			iv = rv.Next
		}
	}

	for iu != pool.NilIndex {
		ru := g.pool.At(iu)
		if ru.Neighbor != v {
			g.vertices[u].fillScore--
			g.markChanged(u)
		}
		iu = ru.Next
	}
	for iv != pool.NilIndex {
		rv := g.pool.At(iv)
		if rv.Neighbor != u {
			g.vertices[v].fillScore--
			g.markChanged(v)
		}
		iv = rv.Next
	}
}

// updateFillScoreOnEliminate adjusts fillScore for every member of clique
// (the eliminated vertex v's current neighbor set, sorted ascending) to
// account for v leaving the graph entirely. Every pair within clique is
// already connected by the fill-in step that runs before this is called,
// so for w ∈ clique, any OTHER neighbor x of w is either itself a clique
// member (pair (v,x) was already an edge - not a missing pair, nothing to
// adjust) or is exclusive to w (pair (v,x) was missing and counted in
// fillScore(w); once v is gone that pair no longer exists, so fillScore(w)
// drops by one per such x). Both neighbor lists are sorted, so a merge
// walk finds the exclusive neighbors in one pass per w.
func (g *Graph) updateFillScoreOnEliminate(v int, clique []int) {
	for _, w := range clique {
		ci := 0
		idx := g.vertices[w].head
		for idx != pool.NilIndex {
			rec := g.pool.At(idx)
			x := rec.Neighbor
			for ci < len(clique) && clique[ci] < x {
				ci++
			}
			inClique := ci < len(clique) && clique[ci] == x
			if x != v && !inClique {
				g.vertices[w].fillScore--
				g.markChanged(w)
			}
			idx = rec.Next
		}
	}
}
