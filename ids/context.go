// Package ids: identifier and context types.
//
// This file declares ID, the sequential Context, and the thread-shared
// AtomicContext. All three are cheap value types with no allocation on the
// minting path.

package ids

import (
	"strconv"
	"sync/atomic"
)

// ID is an opaque identifier minted by a Context or AtomicContext of the
// same family F.
//
// Two IDs are equal iff their raw counter values are equal; IDs order by the
// same value, satisfy cmp.Ordered, and hash as plain integers, so they are
// directly usable as map keys. An ID is immutable once minted and never
// becomes invalid to hold — it merely stops resolving once the entry it
// keyed is removed.
type ID[F any] uint64

// Raw returns the underlying counter value of the id.
func (id ID[F]) Raw() uint64 { return uint64(id) }

// Less reports whether id orders strictly before other.
func (id ID[F]) Less(other ID[F]) bool { return id < other }

// String renders the id for diagnostics, e.g. "Id(42)".
func (id ID[F]) String() string { return "Id(" + strconv.FormatUint(uint64(id), 10) + ")" }

// Context mints unique IDs of family F from a monotonically increasing
// counter starting at zero. The zero value is ready to use.
//
// Minting mutates only the counter: no allocation, no I/O. Within one
// Context every NextID call returns a distinct, strictly increasing value;
// freed ids are never reclaimed, so gaps left by removed entries are
// permanent. The counter is not guarded against 64-bit wraparound.
//
// A Context is NOT safe for concurrent minting; use AtomicContext when ids
// must be produced from multiple goroutines through one shared generator.
type Context[F any] struct {
	current uint64
}

// NewContext returns a Context whose first minted id is 0.
// Complexity: O(1)
func NewContext[F any]() Context[F] {
	return Context[F]{}
}

// ContextAt returns a Context whose next minted id is next.
//
// This exists for reconstructing a generator from persisted data (resume at
// one past the largest id ever persisted); it is not a normal entry point —
// resuming below previously minted values forfeits uniqueness.
// Complexity: O(1)
func ContextAt[F any](next uint64) Context[F] {
	return Context[F]{current: next}
}

// NextID returns the current counter value as a fresh id, then increments.
// Complexity: O(1)
func (c *Context[F]) NextID() ID[F] {
	id := ID[F](c.current)
	c.current++

	return id
}

// AtomicContext is a Context variant whose counter is an atomically
// incremented shared cell: concurrent callers minting through the same
// instance never receive the same value. The increment is a sequentially
// consistent fetch-and-add, so ids total-order across goroutines in the
// order the increments land. The zero value is ready to use.
type AtomicContext[F any] struct {
	current atomic.Uint64
}

// NewAtomicContext returns an AtomicContext whose first minted id is 0.
// Complexity: O(1)
func NewAtomicContext[F any]() *AtomicContext[F] {
	return &AtomicContext[F]{}
}

// NextID atomically claims and returns the next id.
// Safe for concurrent use. Complexity: O(1)
func (c *AtomicContext[F]) NextID() ID[F] {
	return ID[F](c.current.Add(1) - 1)
}
