// Package graph: traversal over nodes and links.
//
// Sequences range over the live backing maps: each is single-pass, visits
// exactly as many items as entries existed when ranging began, and must not
// overlap a mutation of the same store. Sorted-slice snapshots are provided
// where deterministic ordering matters.

package graph

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/veltran/plexus/ids"
)

// Nodes yields every (id, payload) node entry, in no guaranteed order.
func (g *Graph[N, L]) Nodes() iter.Seq2[ids.ID[N], N] {
	return func(yield func(ids.ID[N], N) bool) {
		for id, n := range g.nodes {
			if !yield(id, n.value) {
				return
			}
		}
	}
}

// NodesMut yields every node id with a pointer to its payload for in-place
// mutation. Do not add or remove entries while ranging.
func (g *Graph[N, L]) NodesMut() iter.Seq2[ids.ID[N], *N] {
	return func(yield func(ids.ID[N], *N) bool) {
		for id, n := range g.nodes {
			if !yield(id, &n.value) {
				return
			}
		}
	}
}

// NodeValues yields every node payload, in no guaranteed order.
func (g *Graph[N, L]) NodeValues() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range g.nodes {
			if !yield(n.value) {
				return
			}
		}
	}
}

// NodeIDs returns all node ids sorted ascending for reproducible ordering.
// Complexity: O(V log V)
func (g *Graph[N, L]) NodeIDs() []ids.ID[N] {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Links yields every (pair, payload) link entry, in no guaranteed order.
func (g *Graph[N, L]) Links() iter.Seq2[Pair[N], L] {
	return func(yield func(Pair[N], L) bool) {
		for pair, v := range g.links {
			if !yield(pair, *v) {
				return
			}
		}
	}
}

// LinksMut yields every link key with a pointer to its payload for in-place
// mutation. Do not add or remove entries while ranging.
func (g *Graph[N, L]) LinksMut() iter.Seq2[Pair[N], *L] {
	return func(yield func(Pair[N], *L) bool) {
		for pair, v := range g.links {
			if !yield(pair, v) {
				return
			}
		}
	}
}

// LinkValues yields every link payload, in no guaranteed order.
func (g *Graph[N, L]) LinkValues() iter.Seq[L] {
	return func(yield func(L) bool) {
		for _, v := range g.links {
			if !yield(*v) {
				return
			}
		}
	}
}

// LinkKeys returns all link pairs sorted by (min, max) for reproducible
// ordering. Complexity: O(E log E)
func (g *Graph[N, L]) LinkKeys() []Pair[N] {
	keys := slices.Collect(maps.Keys(g.links))
	slices.SortFunc(keys, comparePairs)

	return keys
}

// Neighbors returns the ids adjacent to the node, sorted ascending, comma-ok.
// The result is a snapshot; mutating the graph does not affect it.
// Complexity: O(d log d), where d is the node's degree.
func (g *Graph[N, L]) Neighbors(id ids.ID[N]) ([]ids.ID[N], bool) {
	n, exists := g.nodes[id]
	if !exists {
		return nil, false
	}

	return slices.Sorted(maps.Keys(n.neighbors)), true
}

// comparePairs orders link keys by min element, then max.
func comparePairs[N any](a, b Pair[N]) int {
	if c := cmp.Compare(a.Min(), b.Min()); c != 0 {
		return c
	}

	return cmp.Compare(a.Max(), b.Max())
}
