package problem

import (
	"math"

	"github.com/katalvlaran/elimorder/graph"
)

// LogBase selects which logarithm BuildGraph uses to turn a domain size into
// the logK value graph.Graph stores per vertex (natural or base-10 log of
// domain size). Once chosen for a Problem it applies to every vertex.
type LogBase int

const (
	// NaturalLog uses math.Log, matching gonum's floats.LogSumExp convention.
	NaturalLog LogBase = iota
	// Log10 uses math.Log10, for callers who want decimal-digit complexity reporting.
	Log10
)

func (b LogBase) apply(k int) float64 {
	if b == Log10 {
		return math.Log10(float64(k))
	}
	return math.Log(float64(k))
}

// BuildGraph validates p, then translates its factor scopes into the primal
// graph: an edge u-v is present iff some scope contains both u and v. Each
// scope is emitted as a clique over its member vertices, the same all-pairs
// loop a complete-graph constructor uses over a vertex subset rather than
// the full vertex set.
func BuildGraph(p Problem, logBase LogBase) (*graph.Graph, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	logK := make([]float64, p.N)
	for v, k := range p.DomainSizes {
		logK[v] = logBase.apply(k)
	}

	g, err := graph.NewGraph(p.N, logK)
	if err != nil {
		return nil, err
	}

	for _, scope := range p.Scopes {
		for i := 0; i < len(scope); i++ {
			for j := i + 1; j < len(scope); j++ {
				if err := g.AddEdge(scope[i], scope[j]); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
