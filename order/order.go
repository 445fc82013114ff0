package order

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/elimorder/fillremove"
	"github.com/katalvlaran/elimorder/graph"
	"github.com/katalvlaran/elimorder/partition"
	"gonum.org/v1/gonum/floats"
)

// cost returns v's score under the configured Cost function.
func cost(g *graph.Graph, c Cost, v int) float64 {
	switch c {
	case MinDegree:
		return float64(g.Degree(v))
	case MinComplexity:
		return g.ElimScore(v)
	default: // MinFill
		return float64(g.FillScore(v))
	}
}

// pickGeneral selects a vertex from the General bucket: first checking the
// easy-width shortcut, then computing cost for every
// candidate, collecting those within ERandomPick of the minimum, and
// sampling one via sampleWithoutReplacement. Returns false if General is
// empty.
func pickGeneral(g *graph.Graph, p *partition.Partition, cfg Config, rng *rand.Rand) (int, bool) {
	ids := p.GeneralIDs()
	if len(ids) == 0 {
		return 0, false
	}

	if cfg.EasyWidth > 0 {
		for _, v := range ids {
			if g.Degree(v) <= cfg.EasyWidth {
				return v, true
			}
		}
	}

	best := math.Inf(1)
	for _, v := range ids {
		if c := cost(g, cfg.Cost, v); c < best {
			best = c
		}
	}

	candidates := make([]int, 0, len(ids))
	for _, v := range ids {
		if cost(g, cfg.Cost, v) <= best+cfg.ERandomPick {
			candidates = append(candidates, v)
		}
	}

	k := cfg.NRandomPick
	if k <= 0 {
		k = 1
	}
	return sampleWithoutReplacement(candidates, k, rng), true
}

// Run implements the ordering engine's main loop: while
// non-Ordered, non-Ignored vertices remain, pick one (Trivial, then
// ZeroFill, then a cost search over General), simulate its elimination,
// reclassify touched vertices, and track width/complexity against any
// configured cutoffs.
func Run(g *graph.Graph, p *partition.Partition, cfg Config) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if p == nil {
		return Result{}, ErrNilPartition
	}
	if p.Len(partition.KindGeneral)+p.Len(partition.KindZeroFill)+p.Len(partition.KindTrivial)+
		p.Len(partition.KindOrdered)+p.Len(partition.KindIgnored) != g.N() {
		return Result{}, ErrSizeMismatch
	}

	base := NewRNG(cfg.Seed)
	// p was classified from g's current state, so changes recorded while
	// the graph was built are already accounted for; start each iteration's
	// change set empty.
	g.Drain()
	for _, v := range cfg.Ignored {
		p.MarkIgnored(v)
	}

	maxWidth := 0
	complexityLog := math.Inf(-1)
	storageLog := math.Inf(-1)
	order := make([]int, 0, g.N())
	fillEdges := make([]graph.FillEdge, 0)
	records := make([]fillremove.Record, 0, g.N())
	outcome := Completed
	failedAt := 0

loop:
	for {
		remaining := p.Len(partition.KindTrivial) + p.Len(partition.KindZeroFill) + p.Len(partition.KindGeneral)
		if remaining == 0 {
			break
		}
		if cfg.QuitAfterEasyDone && p.Len(partition.KindTrivial) == 0 && p.Len(partition.KindZeroFill) == 0 {
			break
		}

		v, ok := p.PopTrivial()
		if !ok {
			v, ok = p.PopZeroFill()
		}
		pickedFromGeneral := false
		if !ok {
			v, ok = pickGeneral(g, p, cfg, base)
			pickedFromGeneral = ok
		}
		if !ok {
			break
		}

		width := g.Degree(v)
		elimScoreAtPick := g.ElimScore(v)
		failedAt = g.Iteration()

		added, clique, iteration, err := g.Eliminate(v)
		if err != nil {
			return Result{Outcome: FatalPoolExhausted, FailedAtIteration: failedAt}, err
		}

		if pickedFromGeneral {
			p.MarkOrdered(v)
		}

		if width > maxWidth {
			maxWidth = width
		}
		complexityLog = floats.LogSumExp([]float64{complexityLog, elimScoreAtPick})
		storageLog = floats.LogSumExp([]float64{storageLog, elimScoreAtPick - g.LogK(v)})

		fillEdges = append(fillEdges, added...)
		records = append(records, fillremove.Record{Vertex: v, Iteration: iteration, Clique: clique})
		order = append(order, v)

		for _, w := range g.Drain() {
			if p.Kind(w) == partition.KindOrdered || p.Kind(w) == partition.KindIgnored {
				continue
			}
			p.Reclassify(w, g.Degree(w), g.FillScore(w))
		}

		if cfg.EarlyTerminateOnWidth && cfg.WidthLimit != 0 && maxWidth > cfg.WidthLimit {
			outcome = AbortedByWidth
			break loop
		}
		if cfg.EarlyTerminateOnComplexity && complexityLog > cfg.ComplexityLimitLog {
			outcome = AbortedByComplexity
			break loop
		}
	}

	if outcome == Completed {
		order = append(order, p.IgnoredIDs()...)
	}

	return Result{
		Order:                 order,
		Width:                 maxWidth,
		ComplexityLog:         complexityLog,
		NewFunctionStorageLog: storageLog,
		FillEdgeCount:         len(fillEdges),
		FillEdges:             fillEdges,
		Records:               records,
		Outcome:               outcome,
		FailedAtIteration:     0,
	}, nil
}
