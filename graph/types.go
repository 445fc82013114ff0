package graph

import (
	"errors"

	"github.com/katalvlaran/elimorder/pool"
)

// Sentinel errors for Graph construction and mutation.
var (
	// ErrInvalidVertexCount indicates a non-positive N was requested.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be positive")

	// ErrDomainSizeMismatch indicates len(logK) != N.
	ErrDomainSizeMismatch = errors.New("graph: logK length must equal vertex count")

	// ErrNonPositiveDomain indicates a logK entry is not a finite non-negative value.
	ErrNonPositiveDomain = errors.New("graph: domain log-size must be finite and non-negative")

	// ErrVertexOutOfRange indicates a vertex id outside [0,N).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrSelfLoop indicates an edge was requested from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loops are not supported")

	// ErrAlreadyOrdered indicates an operation referenced an already-eliminated vertex.
	ErrAlreadyOrdered = errors.New("graph: vertex already eliminated")
)

// FillEdge records one edge added during elimination: the pair plus the
// iteration (0-based position in elimination order) that produced it.
type FillEdge struct {
	U, V      int
	Iteration int
}

// vertexState holds every per-vertex attribute the graph tracks, except
// kind/pos_in_list, which belong to package partition.
type vertexState struct {
	degree    int
	logK      float64
	fillScore int
	elimScore float64
	head      int // index into the pool's record arena, pool.NilIndex if none
	ordered   bool
}

// Option configures a Graph at construction time.
type Option func(*config)

type config struct {
	poolCapacity int
	extend       pool.Extender
	maxBlocks    int
}

// WithPoolCapacity overrides the initial half-edge capacity of the
// underlying EdgeNodePool. NewGraph falls back to 2*N when unset. Unless
// WithPoolExtender installs a growth callback, NewGraph installs one that
// adds blocks of 2*N records, at most N times, which covers the N(N-1)
// half-edges a simple graph on N vertices can hold at once (see also
// pool.WorstCaseFill).
func WithPoolCapacity(halfEdges int) Option {
	return func(c *config) { c.poolCapacity = halfEdges }
}

// WithPoolExtender installs the EdgeNodePool's growth callback and the
// maximum number of times it may be invoked.
func WithPoolExtender(extend pool.Extender, maxBlocks int) Option {
	return func(c *config) {
		c.extend = extend
		c.maxBlocks = maxBlocks
	}
}
