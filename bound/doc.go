// Package bound computes a fast heuristic lower bound on induced width by
// min-degree peeling a throwaway copy of the graph's adjacency, independent
// of and much cheaper than actually running the ordering engine.
package bound
