// Package traverse implements two analytic walks: breadth-first search
// over the bipartite vertex/edge incidence graph, and s-walk community
// discovery over the hyperedge line graph (two hyperedges are
// s-adjacent when they share at least s vertices). Both are expressed
// as recursive work generation: a seed item is submitted to a
// workqueue.WorkQueue, workers dequeue and expand neighbors, and a
// termination.Detector tracks started/finished counts across every
// locale until the walk is quiescent.
package traverse
