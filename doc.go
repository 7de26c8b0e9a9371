// Package plexus is a small toolkit for storing undirected, payload-carrying
// graphs in memory, addressed by opaque, strongly-typed identifiers.
//
// What is plexus?
//
//	A generic container library that brings together:
//		• Identifiers: typed, family-tagged ID minting — sequential and atomic
//		• Unordered pairs: order-insensitive two-element keys for undirected links
//		• Graph store: bidirectional node/link container with a hard
//		  adjacency/link consistency invariant and JSON persistence
//
// Why choose plexus?
//
//   - Compile-time id safety – ids minted for one family cannot key another
//   - Honest contracts – recoverable absences via comma-ok results, loud
//     panics only where documented, no hidden locking
//   - Pure Go – no cgo, no hidden deps
//   - Generic payloads – nodes and links carry any value type you choose
//
// Everything is organized under three subpackages:
//
//	ids/   — ID, Context, AtomicContext and the id-keyed Map
//	uord/  — the UOrd unordered pair type
//	graph/ — the Graph store built on top of both
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four nodes, four links; each link is keyed by the unordered pair of its
//	endpoint ids, and each node keeps a derived set of its neighbor ids.
//
// plexus stores structure and payloads only: traversal, shortest-path and
// other graph algorithms are consumers of its contract, not part of it.
//
//	go get github.com/veltran/plexus/graph
package plexus
