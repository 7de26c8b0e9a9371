// Package graph: structural cloning.

package graph

import (
	"maps"

	"github.com/veltran/plexus/ids"
)

// Clone returns a deep copy of the graph's structure: node entries,
// adjacency sets, link entries, and the id generator position. Clone and
// original evolve independently but continue minting the same (overlapping)
// id sequence. Payload values are copied by assignment; pointer-typed
// payloads keep sharing their referents.
// Complexity: O(V + E)
func (g *Graph[N, L]) Clone() *Graph[N, L] {
	out := &Graph[N, L]{
		ctx:   g.ctx,
		nodes: make(map[ids.ID[N]]*node[N], len(g.nodes)),
		links: make(map[Pair[N]]*L, len(g.links)),
	}
	for id, n := range g.nodes {
		out.nodes[id] = &node[N]{
			value:     n.value,
			neighbors: maps.Clone(n.neighbors),
		}
	}
	for pair, v := range g.links {
		value := *v
		out.links[pair] = &value
	}

	return out
}
