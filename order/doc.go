// Package order implements the greedy variable-elimination-ordering engine:
// the main loop that repeatedly picks a vertex from graph.Graph via
// partition.Partition, simulates its elimination, and accumulates width and
// complexity statistics until the graph is empty or a configured cutoff
// fires.
package order
