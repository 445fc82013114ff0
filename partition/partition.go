package partition

import "errors"

// ErrVertexOutOfRange indicates an operation referenced a vertex id outside [0,N).
var ErrVertexOutOfRange = errors.New("partition: vertex id out of range")

const nilIndex = -1

// Kind identifies which bucket a vertex currently belongs to.
type Kind int

const (
	// KindGeneral holds vertices with degree >= 2 and fillScore > 0.
	KindGeneral Kind = iota
	// KindZeroFill holds vertices with degree >= 2 and fillScore == 0.
	KindZeroFill
	// KindTrivial holds vertices with degree <= 1.
	KindTrivial
	// KindOrdered holds already-eliminated vertices.
	KindOrdered
	// KindIgnored holds vertices reserved for the tail of the final order.
	KindIgnored
)

// rank orders the three "live" kinds for the forward-only monotonicity
// check: General < ZeroFill < Trivial. Ordered/Ignored are terminal and
// excluded from reclassification.
func rank(k Kind) int {
	switch k {
	case KindGeneral:
		return 0
	case KindZeroFill:
		return 1
	case KindTrivial:
		return 2
	default:
		return -1
	}
}

// Classify returns the bucket a vertex with the given degree and fillScore
// belongs to.
func Classify(degree, fillScore int) Kind {
	if degree <= 1 {
		return KindTrivial
	}
	if fillScore == 0 {
		return KindZeroFill
	}
	return KindGeneral
}

// Partition is the tri-partitioned candidate set over n vertices, backed by
// one intrusive doubly linked list per Kind.
type Partition struct {
	kind []Kind
	prev []int
	next []int
	head [KindIgnored + 1]int
	tail [KindIgnored + 1]int
	size [KindIgnored + 1]int
}

// NewPartition allocates a Partition over n vertices. Every vertex starts
// unclassified; call Classify(v, degree, fillScore) for each one before use.
func NewPartition(n int) *Partition {
	p := &Partition{
		kind: make([]Kind, n),
		prev: make([]int, n),
		next: make([]int, n),
	}
	for k := range p.head {
		p.head[k] = nilIndex
		p.tail[k] = nilIndex
	}
	for v := 0; v < n; v++ {
		p.prev[v] = nilIndex
		p.next[v] = nilIndex
	}
	return p
}

func (p *Partition) checkVertex(v int) {
	if v < 0 || v >= len(p.kind) {
		panic(ErrVertexOutOfRange)
	}
}

// pushBack appends v to the tail of bucket k.
func (p *Partition) pushBack(v int, k Kind) {
	p.kind[v] = k
	p.prev[v] = p.tail[k]
	p.next[v] = nilIndex
	if p.tail[k] != nilIndex {
		p.next[p.tail[k]] = v
	} else {
		p.head[k] = v
	}
	p.tail[k] = v
	p.size[k]++
}

// unlink splices v out of whatever bucket it currently occupies in O(1),
// using only v's own prev/next - no other element's position changes.
func (p *Partition) unlink(v int) {
	k := p.kind[v]
	pv, nx := p.prev[v], p.next[v]
	if pv != nilIndex {
		p.next[pv] = nx
	} else {
		p.head[k] = nx
	}
	if nx != nilIndex {
		p.prev[nx] = pv
	} else {
		p.tail[k] = pv
	}
	p.size[k]--
	p.prev[v] = nilIndex
	p.next[v] = nilIndex
}

// popFront removes the head of bucket k (true FIFO - head-to-tail order is
// exactly insertion order), places it directly into Ordered, and returns
// it. A popped vertex is always headed for elimination, so popFront folds
// in the same bucket transition MarkOrdered would otherwise need to
// perform separately.
func (p *Partition) popFront(k Kind) (int, bool) {
	v := p.head[k]
	if v == nilIndex {
		return 0, false
	}
	p.unlink(v)
	p.pushBack(v, KindOrdered)
	return v, true
}

// Classify assigns v's initial bucket. Must be called exactly once per
// vertex, before any Reclassify/Pop/Mark call touches it.
func (p *Partition) Classify(v, degree, fillScore int) {
	p.checkVertex(v)
	p.pushBack(v, Classify(degree, fillScore))
}

// Reclassify re-evaluates v's bucket given its current degree and
// fillScore, promoting it forward (General -> ZeroFill -> Trivial) if the
// target bucket differs. No-op for Ordered/Ignored vertices. A backward
// transition (e.g. ZeroFill regressing to General) would violate the
// monotonicity invariant the standard min-fill algorithm assumes as a
// precondition; release builds trust it silently, asserting only under
// debug builds (see assertForward in the elimdebug build).
func (p *Partition) Reclassify(v, degree, fillScore int) {
	p.checkVertex(v)
	cur := p.kind[v]
	if cur == KindOrdered || cur == KindIgnored {
		return
	}

	target := Classify(degree, fillScore)
	if target == cur {
		return
	}

	assertForward(cur, target)
	if rank(target) < rank(cur) {
		return
	}

	p.unlink(v)
	p.pushBack(v, target)
}

// PopTrivial removes and returns a Trivial vertex, FIFO, if any remain.
func (p *Partition) PopTrivial() (int, bool) { return p.popFront(KindTrivial) }

// PopZeroFill removes and returns a ZeroFill vertex, FIFO, if any remain.
func (p *Partition) PopZeroFill() (int, bool) { return p.popFront(KindZeroFill) }

// idsOf walks bucket k head-to-tail and collects its members.
func (p *Partition) idsOf(k Kind) []int {
	out := make([]int, 0, p.size[k])
	for v := p.head[k]; v != nilIndex; v = p.next[v] {
		out = append(out, v)
	}
	return out
}

// GeneralIDs returns the current General bucket, in insertion order.
func (p *Partition) GeneralIDs() []int { return p.idsOf(KindGeneral) }

// IgnoredIDs returns the vertices marked Ignored, in the order they were marked.
func (p *Partition) IgnoredIDs() []int { return p.idsOf(KindIgnored) }

// MarkOrdered moves v out of whatever bucket it is in and into Ordered.
func (p *Partition) MarkOrdered(v int) {
	p.checkVertex(v)
	if p.kind[v] != KindOrdered {
		p.unlink(v)
		p.pushBack(v, KindOrdered)
	}
}

// MarkIgnored moves v directly into the Ignored pseudo-bucket, bypassing
// normal selection; the engine appends Ignored vertices to the tail of the
// final order regardless of their score.
func (p *Partition) MarkIgnored(v int) {
	p.checkVertex(v)
	p.unlink(v)
	p.pushBack(v, KindIgnored)
}

// Kind reports v's current bucket.
func (p *Partition) Kind(v int) Kind {
	p.checkVertex(v)
	return p.kind[v]
}

// Len reports the number of vertices currently in bucket k.
func (p *Partition) Len(k Kind) int { return p.size[k] }
