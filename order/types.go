package order

import (
	"errors"

	"github.com/katalvlaran/elimorder/fillremove"
	"github.com/katalvlaran/elimorder/graph"
)

// ErrNilGraph and ErrNilPartition guard Run's required inputs.
var (
	ErrNilGraph     = errors.New("order: graph must not be nil")
	ErrNilPartition = errors.New("order: partition must not be nil")
	ErrSizeMismatch = errors.New("order: graph and partition sizes differ")
)

// Cost selects the scoring function used to rank General-bucket candidates.
type Cost int

const (
	// MinFill picks the vertex with the smallest fillScore.
	MinFill Cost = iota
	// MinDegree picks the vertex with the smallest degree.
	MinDegree
	// MinComplexity picks the vertex with the smallest elimScore.
	MinComplexity
)

// Outcome reports how a Run terminated.
type Outcome int

const (
	// Completed means the main loop ended without a cutoff: every
	// non-Ignored vertex was eliminated, or QuitAfterEasyDone stopped the
	// run once Trivial and ZeroFill were empty.
	Completed Outcome = iota
	// AbortedByWidth means width_limit was exceeded.
	AbortedByWidth
	// AbortedByComplexity means complexity_limit_log was exceeded.
	AbortedByComplexity
	// FatalPoolExhausted means the edge-node pool ran out of capacity
	// mid-iteration with no extender able to recover.
	FatalPoolExhausted
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "Completed"
	case AbortedByWidth:
		return "AbortedByWidth"
	case AbortedByComplexity:
		return "AbortedByComplexity"
	case FatalPoolExhausted:
		return "FatalPoolExhausted"
	default:
		return "Unknown"
	}
}

// Config tabulates the ordering engine's tunable knobs.
type Config struct {
	// Cost selects the scoring function for General-bucket candidates.
	Cost Cost
	// WidthLimit aborts the run once the induced width would exceed it, if
	// nonzero and EarlyTerminateOnWidth is set.
	WidthLimit int
	// EarlyTerminateOnWidth enables the WidthLimit cutoff.
	EarlyTerminateOnWidth bool
	// ComplexityLimitLog aborts the run once cumulative elimination
	// complexity (natural-log space) would exceed it, if
	// EarlyTerminateOnComplexity is set.
	ComplexityLimitLog float64
	// EarlyTerminateOnComplexity enables the ComplexityLimitLog cutoff.
	EarlyTerminateOnComplexity bool
	// QuitAfterEasyDone returns the partial order as soon as both Trivial
	// and ZeroFill are empty, without searching General at all.
	QuitAfterEasyDone bool
	// EasyWidth makes any vertex with degree <= EasyWidth immediately
	// eligible for picking, bypassing the cost search.
	EasyWidth int
	// NRandomPick is the sample size drawn from the top-k candidate pool.
	NRandomPick int
	// ERandomPick is the additive cost slack defining the top-k pool.
	ERandomPick float64
	// Seed seeds the engine's RNG; 0 maps to a fixed default (order.NewRNG).
	Seed int64
	// Ignored lists vertices reserved for the tail of the final order,
	// skipped during selection and appended after the main loop completes.
	Ignored []int
}

// DefaultConfig returns a Config matching the engine's baseline behavior:
// MinFill cost, no cutoffs, no easy-width shortcut, and a pool restricted
// to the candidates tied at the minimum cost (ERandomPick==0), from which
// one is drawn by the seeded RNG; without ties this is the single best.
func DefaultConfig() Config {
	return Config{
		Cost:        MinFill,
		NRandomPick: 1,
		ERandomPick: 0,
	}
}

// Result is the outcome of a Run.
type Result struct {
	// Order is the (possibly partial) elimination order produced, with any
	// Ignored vertices appended to the tail only on Completed.
	Order []int
	// Width is the maximum |N(v)| observed at pick time.
	Width int
	// ComplexityLog is the natural-log-space cumulative elimination
	// complexity, log_sum_exp of each pick's elimScore.
	ComplexityLog float64
	// NewFunctionStorageLog is the log-space total storage footprint of the
	// intermediate factors created, one per pick: log_sum_exp of each pick's
	// elimScore minus its own logK (the clique without the eliminated vertex).
	NewFunctionStorageLog float64
	// FillEdgeCount is len(FillEdges).
	FillEdgeCount int
	// FillEdges is every fill edge added over the run, in insertion order.
	FillEdges []graph.FillEdge
	// Records is one entry per eliminated vertex, capturing its
	// elimination-time neighbor set for fillremove's necessity test.
	Records []fillremove.Record
	// Outcome reports how the run ended.
	Outcome Outcome
	// FailedAtIteration is set to the iteration index at which a fatal
	// pool exhaustion occurred; zero otherwise.
	FailedAtIteration int
}
