// Package graph: mutation and query operations on Graph.
//
// Every mutating method re-establishes the adjacency/link consistency
// invariant before returning, so the invariant holds after each individual
// call, not just at quiescence. All operations are synchronous and complete
// before returning; callers serialize writers per the package contract.

package graph

import (
	"iter"

	"github.com/veltran/plexus/ids"
)

// AddNode mints a fresh id, inserts a node holding value with an empty
// adjacency set, and returns the id. Always succeeds: the embedded context
// has never produced that id before, so the key cannot already be present.
// Complexity: O(1) amortized.
func (g *Graph[N, L]) AddNode(value N) ids.ID[N] {
	id := g.ctx.NextID()
	g.nodes[id] = &node[N]{value: value, neighbors: make(map[ids.ID[N]]struct{})}

	return id
}

// AddLink records a link holding value between nodes a and b.
//
// Panics if a == b: a node may not link to itself, and attempting it is a
// programmer error rather than a recoverable condition. Returns
// ErrNodeNotFound — mutating nothing — if either endpoint is absent.
//
// If the pair is already linked, only the payload is replaced: the previous
// payload is returned with replaced=true and adjacency is untouched
// (idempotent re-linking). Otherwise the link is inserted and both
// endpoints' adjacency sets gain each other's id in the same step.
// Complexity: O(1) amortized.
func (g *Graph[N, L]) AddLink(value L, a, b ids.ID[N]) (prev L, replaced bool, err error) {
	if a == b {
		panic(panicSelfLink)
	}
	na, ok := g.nodes[a]
	if !ok {
		return prev, false, ErrNodeNotFound
	}
	nb, ok := g.nodes[b]
	if !ok {
		return prev, false, ErrNodeNotFound
	}

	key := PairOf(a, b)
	if old, ok := g.links[key]; ok {
		// Re-link: swap payloads, leave adjacency alone.
		prev, *old = *old, value
		return prev, true, nil
	}

	v := value
	g.links[key] = &v
	na.neighbors[b] = struct{}{}
	nb.neighbors[a] = struct{}{}

	return prev, false, nil
}

// AddLinkPair is AddLink keyed by an already-built Pair.
func (g *Graph[N, L]) AddLinkPair(value L, pair Pair[N]) (prev L, replaced bool, err error) {
	a, b := pair.Tuple()

	return g.AddLink(value, a, b)
}

// ExtendLinks applies AddLinkPair to every (pair, payload) item of the
// sequence, one at a time with single-call semantics: a later duplicate of
// the same pair overwrites the earlier payload. Stops at the first error and
// returns it; items already applied stay applied.
// Complexity: O(n) amortized over the sequence length.
func (g *Graph[N, L]) ExtendLinks(links iter.Seq2[Pair[N], L]) error {
	for pair, value := range links {
		if _, _, err := g.AddLinkPair(value, pair); err != nil {
			return err
		}
	}

	return nil
}

// RemoveNode deletes the node and cascades: every link touching id is
// removed, and each former neighbor's adjacency entry pointing back at id is
// pruned (the removed node's own set is discarded wholesale). Returns the
// node payload and the removed link payloads in no guaranteed order, or
// ok=false if the id is unknown.
// Complexity: O(deg(id)).
func (g *Graph[N, L]) RemoveNode(id ids.ID[N]) (value N, removed []L, ok bool) {
	n, ok := g.nodes[id]
	if !ok {
		return value, nil, false
	}
	delete(g.nodes, id)

	removed = make([]L, 0, len(n.neighbors))
	for neighbor := range n.neighbors {
		key := PairOf(id, neighbor)
		if v, exists := g.links[key]; exists {
			removed = append(removed, *v)
			delete(g.links, key)
		}
		// Only the surviving half needs pruning. A neighbor can be absent
		// when a decoded link referenced an id outside the node map.
		if other, exists := g.nodes[neighbor]; exists {
			delete(other.neighbors, id)
		}
	}

	return n.value, removed, true
}

// RemoveLink deletes the link between a and b, pruning both adjacency sides.
// Returns the link payload, or ok=false if the pair is not linked.
// Complexity: O(1).
func (g *Graph[N, L]) RemoveLink(a, b ids.ID[N]) (L, bool) {
	return g.RemoveLinkPair(PairOf(a, b))
}

// RemoveLinkPair is RemoveLink keyed by an already-built Pair.
func (g *Graph[N, L]) RemoveLinkPair(pair Pair[N]) (value L, ok bool) {
	v, ok := g.links[pair]
	if !ok {
		return value, false
	}
	delete(g.links, pair)

	a, b := pair.Tuple()
	if n, exists := g.nodes[a]; exists {
		delete(n.neighbors, b)
	}
	if n, exists := g.nodes[b]; exists {
		delete(n.neighbors, a)
	}

	return *v, true
}

// RemoveOrphanedNodes deletes every node whose adjacency set is currently
// empty, in a single sweep, and returns how many were dropped.
// Complexity: O(V).
func (g *Graph[N, L]) RemoveOrphanedNodes() int {
	dropped := 0
	for id, n := range g.nodes {
		if len(n.neighbors) == 0 {
			delete(g.nodes, id)
			dropped++
		}
	}

	return dropped
}

// ContainsNode reports whether a node exists with the given id.
// Complexity: O(1).
func (g *Graph[N, L]) ContainsNode(id ids.ID[N]) bool {
	_, ok := g.nodes[id]

	return ok
}

// ContainsLink reports whether nodes a and b are linked.
// Complexity: O(1).
func (g *Graph[N, L]) ContainsLink(a, b ids.ID[N]) bool {
	return g.ContainsLinkPair(PairOf(a, b))
}

// ContainsLinkPair is ContainsLink keyed by an already-built Pair.
func (g *Graph[N, L]) ContainsLinkPair(pair Pair[N]) bool {
	_, ok := g.links[pair]

	return ok
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[N, L]) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of links. Complexity: O(1).
func (g *Graph[N, L]) LinkCount() int { return len(g.links) }

// NodeValue returns the payload of the node with the given id, comma-ok.
// Complexity: O(1).
func (g *Graph[N, L]) NodeValue(id ids.ID[N]) (value N, ok bool) {
	if n, exists := g.nodes[id]; exists {
		return n.value, true
	}

	return value, false
}

// NodeValueRef returns a pointer to the node payload for in-place mutation,
// comma-ok. The pointer stays valid until the node is removed.
// Complexity: O(1).
func (g *Graph[N, L]) NodeValueRef(id ids.ID[N]) (*N, bool) {
	if n, exists := g.nodes[id]; exists {
		return &n.value, true
	}

	return nil, false
}

// SetNodeValue replaces the payload of an existing node, reporting whether
// the node was present. Complexity: O(1).
func (g *Graph[N, L]) SetNodeValue(id ids.ID[N], value N) bool {
	n, exists := g.nodes[id]
	if exists {
		n.value = value
	}

	return exists
}

// MustNodeValue returns the payload of the node with the given id, panicking
// if the node is absent. It is the indexed-access shortcut for callers that
// have already established presence; use NodeValue for the fallible form.
func (g *Graph[N, L]) MustNodeValue(id ids.ID[N]) N {
	n, exists := g.nodes[id]
	if !exists {
		panic("graph: no node found for " + id.String())
	}

	return n.value
}

// LinkValue returns the payload of the link between a and b, comma-ok.
// Complexity: O(1).
func (g *Graph[N, L]) LinkValue(a, b ids.ID[N]) (value L, ok bool) {
	if v, exists := g.links[PairOf(a, b)]; exists {
		return *v, true
	}

	return value, false
}

// LinkValueRef returns a pointer to the link payload for in-place mutation,
// comma-ok. The pointer stays valid until the link is removed.
// Complexity: O(1).
func (g *Graph[N, L]) LinkValueRef(a, b ids.ID[N]) (*L, bool) {
	v, exists := g.links[PairOf(a, b)]

	return v, exists
}

// SetLinkValue replaces the payload of an existing link, reporting whether
// the link was present. Adjacency is untouched. Complexity: O(1).
func (g *Graph[N, L]) SetLinkValue(a, b ids.ID[N], value L) bool {
	v, exists := g.links[PairOf(a, b)]
	if exists {
		*v = value
	}

	return exists
}

// MustLinkValue returns the payload of the link between a and b, panicking
// if no such link exists. Use LinkValue for the fallible form.
func (g *Graph[N, L]) MustLinkValue(a, b ids.ID[N]) L {
	v, exists := g.links[PairOf(a, b)]
	if !exists {
		panic("graph: no link found for " + PairOf(a, b).String())
	}

	return *v
}

// Degree returns the number of neighbors of the node, comma-ok.
// Complexity: O(1).
func (g *Graph[N, L]) Degree(id ids.ID[N]) (int, bool) {
	n, exists := g.nodes[id]
	if !exists {
		return 0, false
	}

	return len(n.neighbors), true
}
