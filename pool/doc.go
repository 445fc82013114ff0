// Package pool implements EdgeNodePool: a contiguous arena of adjacency
// records shared by graph.Graph, indexed rather than pointer-linked so it
// stays safe and cache-dense without cgo or unsafe.
//
// A Record is one directed half-edge: {Neighbor, Iteration, Next}. Each
// vertex in graph.Graph owns a head index into the arena; records belonging
// to the same vertex are threaded via Next into a singly linked, sorted
// list. Released records are returned to an internal free list threaded the
// same way, so acquiring and releasing half-edges never allocates once the
// arena has enough capacity.
//
// When the arena is exhausted, Pool calls the caller-supplied Extender to
// grow it by one block. Extender is called at most MaxBlocks times; beyond
// that, Acquire returns ErrPoolExhausted rather than growing unboundedly -
// greedy elimination can blow up fill-in quadratically, and the caller
// should decide how much memory it is willing to spend on a single restart.
package pool
