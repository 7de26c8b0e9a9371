// Package ids: the id-keyed Map container.
//
// Map pairs a plain hash map with an embedded Context so that every inserted
// value receives a fresh, never-reused key. It follows the same single-writer
// discipline as the rest of the module: exclusive access to mutate, shared
// access to read.

package ids

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// Map is a map keyed by IDs of its own value type's family. Insert mints a
// fresh id for each value; Put allows writing under an id minted elsewhere
// (including by another Map — keeping lineages apart is the caller's job).
type Map[T any] struct {
	ctx     Context[T]
	entries map[ID[T]]*T
}

// NewMap returns an empty Map.
// Complexity: O(1)
func NewMap[T any]() *Map[T] {
	return &Map[T]{entries: make(map[ID[T]]*T)}
}

// MapWithCapacity returns an empty Map with room for n entries.
// Complexity: O(1)
func MapWithCapacity[T any](n int) *Map[T] {
	return &Map[T]{entries: make(map[ID[T]]*T, n)}
}

// Insert stores value under a freshly minted id and returns that id.
// The mint can never collide with an existing key. Complexity: O(1) amortized.
func (m *Map[T]) Insert(value T) ID[T] {
	id := m.ctx.NextID()
	m.entries[id] = &value

	return id
}

// Put stores value under an explicit id, returning the previous value and
// whether one was replaced. Complexity: O(1) amortized.
func (m *Map[T]) Put(id ID[T], value T) (prev T, replaced bool) {
	if old, ok := m.entries[id]; ok {
		prev, *old = *old, value
		return prev, true
	}
	m.entries[id] = &value

	return prev, false
}

// Get returns the value stored under id, comma-ok.
// Complexity: O(1)
func (m *Map[T]) Get(id ID[T]) (T, bool) {
	if v, ok := m.entries[id]; ok {
		return *v, true
	}
	var zero T

	return zero, false
}

// GetRef returns a pointer to the value stored under id, comma-ok. The
// pointer stays valid until the entry is removed.
// Complexity: O(1)
func (m *Map[T]) GetRef(id ID[T]) (*T, bool) {
	v, ok := m.entries[id]

	return v, ok
}

// MustGet returns the value stored under id, panicking if the entry is
// absent. It is the indexed-access shortcut for callers that have already
// established presence; use Get for the fallible form.
func (m *Map[T]) MustGet(id ID[T]) T {
	v, ok := m.entries[id]
	if !ok {
		panic("ids: no entry found for " + id.String())
	}

	return *v
}

// Contains reports whether an entry exists under id.
// Complexity: O(1)
func (m *Map[T]) Contains(id ID[T]) bool {
	_, ok := m.entries[id]

	return ok
}

// Remove deletes the entry under id, returning its value and whether it
// existed. The id is never minted again by this Map. Complexity: O(1)
func (m *Map[T]) Remove(id ID[T]) (T, bool) {
	if v, ok := m.entries[id]; ok {
		delete(m.entries, id)
		return *v, true
	}
	var zero T

	return zero, false
}

// Retain keeps only the entries for which keep returns true. The callback
// receives a pointer and may mutate the value in place.
// Complexity: O(n)
func (m *Map[T]) Retain(keep func(ID[T], *T) bool) {
	for id, v := range m.entries {
		if !keep(id, v) {
			delete(m.entries, id)
		}
	}
}

// Len returns the number of entries. Complexity: O(1)
func (m *Map[T]) Len() int { return len(m.entries) }

// Clear removes every entry and resets the id counter to zero, so the next
// Insert mints id 0 again. Complexity: O(1)
func (m *Map[T]) Clear() {
	m.ctx = NewContext[T]()
	m.entries = make(map[ID[T]]*T)
}

// IDs returns all keys sorted ascending for deterministic iteration.
// Complexity: O(n log n)
func (m *Map[T]) IDs() []ID[T] {
	return slices.Sorted(maps.Keys(m.entries))
}

// All yields every (id, value) entry. The sequence is single-pass over the
// live map; do not mutate the Map while ranging.
func (m *Map[T]) All() iter.Seq2[ID[T], T] {
	return func(yield func(ID[T], T) bool) {
		for id, v := range m.entries {
			if !yield(id, *v) {
				return
			}
		}
	}
}

// Values yields every stored value.
func (m *Map[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.entries {
			if !yield(*v) {
				return
			}
		}
	}
}

// ValuesMut yields a pointer to every stored value, allowing in-place
// mutation. Do not insert or remove entries while ranging.
func (m *Map[T]) ValuesMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, v := range m.entries {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a Map with copied entries and the same counter position, so
// clone and original keep minting the same (overlapping) id sequence.
// Complexity: O(n)
func (m *Map[T]) Clone() *Map[T] {
	out := &Map[T]{ctx: m.ctx, entries: make(map[ID[T]]*T, len(m.entries))}
	for id, v := range m.entries {
		value := *v
		out.entries[id] = &value
	}

	return out
}

// MarshalJSON encodes the Map as a plain id→value JSON object. The counter
// itself is not persisted; UnmarshalJSON re-derives it.
func (m *Map[T]) MarshalJSON() ([]byte, error) {
	plain := make(map[ID[T]]T, len(m.entries))
	for id, v := range m.entries {
		plain[id] = *v
	}

	return json.Marshal(plain)
}

// UnmarshalJSON decodes an id→value object and resumes the id counter at one
// past the largest key seen, so later Inserts cannot collide with persisted
// ids. On failure the receiver is left untouched.
func (m *Map[T]) UnmarshalJSON(data []byte) error {
	var plain map[ID[T]]T
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}

	entries := make(map[ID[T]]*T, len(plain))
	var next uint64
	for id, v := range plain {
		value := v
		entries[id] = &value
		if id.Raw()+1 > next {
			next = id.Raw() + 1
		}
	}
	m.ctx = ContextAt[T](next)
	m.entries = entries

	return nil
}
