// Package ids provides opaque, strongly-typed identifier generators.
//
// An ID is a copyable handle over a 64-bit counter value, tagged at the type
// level with a "family" marker so that ids minted for one container cannot be
// mixed up with keys of another:
//
//	type user struct{ name string }
//	type order struct{ total int64 }
//
//	var users ids.Context[user]
//	var orders ids.Context[order]
//
//	u := users.NextID()  // ids.ID[user]
//	o := orders.NextID() // ids.ID[order]
//	_ = u == o           // compile error: mismatched types
//
// The family parameter has no runtime representation; it exists purely so the
// compiler rejects "crossing the beams". It defaults to nothing — pick any
// type you like, typically the payload type the ids will key.
//
// Two generators are provided. Context is a plain sequential counter for
// single-owner use; AtomicContext has the identical contract but increments
// atomically, so one shared instance may be used by concurrent producers.
// Uniqueness is guaranteed only within a single context's lineage: two
// independently created contexts of the same family mint overlapping ids,
// and keeping them apart is the caller's responsibility.
//
// Map is an id-keyed map that owns its own Context, minting a fresh ID for
// every inserted value.
package ids
