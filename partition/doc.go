// Package partition implements CandidatePartition: the tri-partitioned
// candidate set (Trivial / ZeroFill / General) plus the Ordered and Ignored
// pseudo-buckets, used by the ordering engine to isolate cheap eliminations
// from the expensive General-bucket cost search.
//
// Each bucket is an intrusive doubly linked list threaded through parallel
// prev/next index arrays, the same arena-of-indices technique pool.Pool and
// graph.Graph use for their own adjacency bookkeeping. This gives O(1)
// push-to-tail, O(1) pop-from-head, and O(1) removal from an arbitrary
// position (a vertex splices itself out using only its own prev/next,
// without touching anyone else's position) - properties a slice with
// swap-with-last removal cannot provide together: swapping the last
// element into a just-vacated slot reorders whatever was previously at the
// back, which silently breaks FIFO pop order for every element after the
// first one removed. PopTrivial and PopZeroFill rely on the list's natural
// head-to-tail order being exactly insertion order: a vertex classified
// Trivial/ZeroFill at initialization is always picked before one that only
// became eligible after a later elimination.
package partition
