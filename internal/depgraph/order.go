package depgraph

import (
	"log"
	"slices"

	"github.com/dominikbraun/graph"
)

// Order flattens g into a total ordering over its nodes, covering every
// node exactly once. For every edge A -> B (A references B), B comes
// before A, so definitions appear before their consumers. Files with no
// ordering constraint between them come out in ascending path order.
//
// A graph with a cycle (self-loops included) has no topological order; in
// that case Order degrades to the lexicographically sorted node list. The
// degraded mode is deterministic and is not an error.
func Order(g graph.Graph[string, string]) []string {
	// The raw sort places referencing files before the files they
	// reference; reversing it yields dependencies-first. Ties compare
	// descending here so the reversed sequence ascends lexically.
	sorted, err := graph.StableTopologicalSort(g, func(a, b string) bool { return a > b })
	if err != nil {
		log.Printf("dependency cycle detected, falling back to lexicographic order")
		return sortedNodes(g)
	}

	slices.Reverse(sorted)
	return sorted
}

// sortedNodes returns every node of g in ascending path order.
func sortedNodes(g graph.Graph[string, string]) []string {
	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil
	}

	paths := make([]string, 0, len(adjacency))
	for p := range adjacency {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
