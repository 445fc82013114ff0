package pool

import (
	"errors"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrPoolExhausted indicates the arena ran out of records and either has no
// Extender configured, the Extender returned no new records, or MaxBlocks
// extension calls have already been spent.
var ErrPoolExhausted = errors.New("pool: edge-node arena exhausted")

// ErrInvalidCapacity indicates a non-positive initial capacity was requested.
var ErrInvalidCapacity = errors.New("pool: initial capacity must be positive")

// nilIndex marks the absence of a record (list terminator / empty free list).
const nilIndex = -1

// Record is one directed half-edge stored in the arena.
//
// Neighbor is the adjacent vertex id. Iteration is the elimination
// iteration on which this half-edge was introduced as a fill edge, or a
// negative value for original (non-fill) edges. Next is the index of the
// following record in whichever list currently owns this record (a
// vertex's neighbor list, or the pool's free list).
type Record struct {
	Neighbor  int
	Iteration int
	Next      int
}

// Extender supplies additional blocks of records when the arena is
// exhausted. It returns a fresh, unused slice of records each call.
type Extender func() ([]Record, error)

// Pool is a growable arena of Records with O(1) acquire/release via an
// internal free list.
type Pool struct {
	records   []Record
	freeHead  int
	extend    Extender
	maxBlocks int
	blocksUsed int
}

// NewPool preallocates initialCapacity records (free, unthreaded-to-any-
// vertex) and wires in an optional Extender for growth beyond that. A nil
// extender means Acquire fails with ErrPoolExhausted once the initial
// capacity is consumed. maxBlocks bounds the number of Extender calls;
// zero or negative means "no extension allowed" (extender is never called).
func NewPool(initialCapacity int, extend Extender, maxBlocks int) (*Pool, error) {
	if initialCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	p := &Pool{
		records:   make([]Record, initialCapacity),
		freeHead:  nilIndex,
		extend:    extend,
		maxBlocks: maxBlocks,
	}
	p.threadFreeList(0, initialCapacity)

	return p, nil
}

// threadFreeList links records[from:to) onto the front of the free list, in
// ascending index order (so the lowest-index free record is acquired
// first - keeps early iterations cache-local).
func (p *Pool) threadFreeList(from, to int) {
	for i := to - 1; i >= from; i-- {
		p.records[i].Next = p.freeHead
		p.freeHead = i
	}
}

// grow calls the Extender once, appends its records, and threads them onto
// the free list. Returns ErrPoolExhausted if growth is unavailable.
func (p *Pool) grow() error {
	if p.extend == nil || p.blocksUsed >= p.maxBlocks {
		return ErrPoolExhausted
	}

	block, err := p.extend()
	if err != nil {
		return err
	}
	if len(block) == 0 {
		return ErrPoolExhausted
	}
	p.blocksUsed++

	start := len(p.records)
	p.records = append(p.records, block...)
	p.threadFreeList(start, len(p.records))

	return nil
}

// Acquire returns the index of a free record initialized with the given
// neighbor and iteration, removing it from the free list. Growing the
// arena via Extender happens transparently on exhaustion.
func (p *Pool) Acquire(neighbor, iteration int) (int, error) {
	if p.freeHead == nilIndex {
		if err := p.grow(); err != nil {
			return nilIndex, err
		}
	}

	idx := p.freeHead
	p.freeHead = p.records[idx].Next
	p.records[idx].Neighbor = neighbor
	p.records[idx].Iteration = iteration
	p.records[idx].Next = nilIndex

	return idx, nil
}

// Release returns a record to the free list. The caller must first splice
// it out of whatever vertex list it belonged to.
func (p *Pool) Release(idx int) {
	p.records[idx].Next = p.freeHead
	p.freeHead = idx
}

// At returns the record stored at idx. idx must be a value previously
// returned by Acquire and not yet Released.
func (p *Pool) At(idx int) Record {
	return p.records[idx]
}

// SetNext updates the Next pointer of the record at idx - used by Graph
// when splicing a record into or out of a vertex's sorted neighbor list.
func (p *Pool) SetNext(idx, next int) {
	p.records[idx].Next = next
}

// NilIndex is the sentinel "no record" index, exported for callers walking
// adjacency lists built from this pool.
const NilIndex = nilIndex

// WorstCaseFill returns the theoretical worst-case number of fill edges a
// single elimination of a vertex with d current neighbors could add:
// C(d, 2), the number of unordered pairs. Callers size Pool capacity from
// this to avoid repeated arena growth on dense restarts.
func WorstCaseFill(d int) int {
	if d < 2 {
		return 0
	}

	return combin.Binomial(d, 2)
}
