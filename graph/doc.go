// Package graph implements the mutable primal graph that the ordering
// engine eliminates vertices from, with incrementally maintained per-vertex
// fill-in scores.
//
// Graph owns a dense vertex array ([0,N)) and an EdgeNodePool (package
// pool) of adjacency records; it does not expose the pool or raw record
// indices to callers. Three quantities are kept current on every vertex
// after every mutation:
//
//	degree     — len(neighbors(v))
//	fillScore  — count of neighbor pairs (a,b) of v with no edge a-b
//	elimScore  — logK(v) + Σ logK(u) over u ∈ neighbors(v)
//
// AddEdge recomputes fillScore incrementally via a sorted-list merge walk
// (see score.go) rather than rescanning v's whole neighborhood, which is
// what keeps greedy elimination fast across thousands of eliminations.
//
// Eliminate(v) computes the missing pairs among v's current neighbors,
// adds them as fill edges stamped with the graph's current iteration
// counter, then removes v
// from every neighbor's list. The neighbor set observed immediately before
// removal - the "clique at elimination" - is returned alongside the fill
// edges, for consumption by package fillremove.
//
// Neighbor lists are sorted ascending by vertex id and never touched via a
// hash set: the merge-walk fill-score update depends on that ordering.
package graph
