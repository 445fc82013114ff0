// Package problem is the external input boundary: it validates a raw
// collection of variable domains and factor scopes and translates them into
// the primal graph.Graph the ordering engine operates on.
package problem
