// Package fillremove implements the redundant-fill-edge removal post-pass:
// given the fill edges added by a greedy elimination run and a record of
// each eliminated vertex's neighborhood at the moment of its elimination,
// it identifies which fill edges were never actually required by any
// vertex's triangulation and reports them as removable.
package fillremove
