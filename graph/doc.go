// Package graph provides Graph, a generic in-memory undirected graph store
// addressed by opaque, typed identifiers.
//
// A Graph[N, L] owns two collections kept mutually consistent: nodes, each
// holding an N payload plus a derived set of neighbor ids, and links, each
// keyed by the unordered pair of its two endpoint ids and holding an L
// payload. The central invariant — enforced by every mutation and rebuilt
// from scratch on decode — is:
//
//	for every present node n, Neighbors(n) equals exactly the set of ids m
//	such that a link keyed by the unordered pair {n, m} exists.
//
// Ids are minted by a Context embedded in each Graph instance, so a fresh
// AddNode can never collide with a live key, and ids from one Graph cannot
// (within the same family) be assumed meaningful in another.
//
// # Error model
//
// Absences are expected and recoverable: lookups return comma-ok, and
// AddLink reports ErrNodeNotFound for a missing endpoint. Exactly two
// conditions fail loudly, both documented programmer errors: linking a node
// to itself panics, and the Must* accessors panic on an absent key (they are
// the trust-the-caller shortcut next to the fallible forms).
//
// # Concurrency
//
// Graph contains no locking. Mutations require exclusive access; any number
// of readers may share the store while no writer runs. Iteration sequences
// range over the live maps and must not overlap a mutation of the same
// store. The embedded id generator is the plain sequential Context — callers
// needing concurrent minting outside a single-writer graph should use
// ids.AtomicContext as a separate building block.
//
// # Persistence
//
// A Graph serializes to JSON as two fields: "nodes", mapping raw id to node
// payload, and "links", listing (min, max) endpoint pairs with their
// payloads. Adjacency is never persisted; decoding reconstructs it from the
// link keys alone and resumes the id generator past the largest id seen, so
// later mints cannot collide with persisted ids.
package graph
