// Package graph: core type declarations, sentinel errors, options, and the
// Graph constructor. Method implementations live in methods.go (mutation and
// query), iterate.go (traversal) and encode.go (persistence).

package graph

import (
	"errors"

	"github.com/veltran/plexus/ids"
	"github.com/veltran/plexus/uord"
)

// Sentinel errors for graph operations and decoding.
var (
	// ErrNodeNotFound indicates an operation referenced a node id that is not
	// present in the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrMissingField indicates a decoded graph object lacked a required field.
	ErrMissingField = errors.New("graph: decode: missing required field")

	// ErrDuplicateField indicates a decoded graph object repeated a field.
	ErrDuplicateField = errors.New("graph: decode: duplicate field")

	// ErrUnknownField indicates a decoded graph object carried an unrecognized field.
	ErrUnknownField = errors.New("graph: decode: unknown field")

	// ErrDuplicateLink indicates a decoded link list keyed the same pair twice.
	ErrDuplicateLink = errors.New("graph: decode: duplicate link key")

	// ErrSelfLink indicates a decoded link key referenced a single node twice.
	ErrSelfLink = errors.New("graph: decode: self-link key")
)

// panicSelfLink is the message raised when AddLink is asked to link a node
// to itself. This is a precondition violation, not a recoverable condition.
const panicSelfLink = "graph: node may not link to itself"

// Pair is the unordered pair of node ids keying a link between two nodes of
// family N. PairOf is the canonical constructor.
type Pair[N any] struct {
	uord.UOrd[ids.ID[N]]
}

// PairOf returns the link key for the two node ids, in either order.
// Complexity: O(1)
func PairOf[N any](a, b ids.ID[N]) Pair[N] {
	return Pair[N]{uord.New(a, b)}
}

// node is a stored node entry: the payload plus the derived adjacency set.
// The adjacency set is a cached view over the link collection, maintained
// incrementally by every mutation; it is never independently authoritative.
type node[N any] struct {
	value     N
	neighbors map[ids.ID[N]]struct{}
}

// Graph is the in-memory undirected graph store. N is the node payload type
// and also the id family; L is the link payload type.
//
// The zero value is not usable; construct with New.
type Graph[N, L any] struct {
	// ctx mints node ids for this instance and lives exactly as long as it.
	ctx ids.Context[N]

	// Storage: node id → entry, unordered id pair → link payload.
	nodes map[ids.ID[N]]*node[N]
	links map[Pair[N]]*L
}

// Option configures a Graph before creation.
type Option func(*config)

type config struct {
	nodeCap int
	linkCap int
}

// WithNodeCapacity pre-sizes the node collection for n entries.
func WithNodeCapacity(n int) Option {
	return func(c *config) { c.nodeCap = n }
}

// WithLinkCapacity pre-sizes the link collection for n entries.
func WithLinkCapacity(n int) Option {
	return func(c *config) { c.linkCap = n }
}

// New creates an empty Graph with the given options.
// Complexity: O(1)
func New[N, L any](opts ...Option) *Graph[N, L] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, L]{
		nodes: make(map[ids.ID[N]]*node[N], cfg.nodeCap),
		links: make(map[Pair[N]]*L, cfg.linkCap),
	}
}
