// Package ids_test verifies the id-keyed Map container.
package ids_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veltran/plexus/ids"
)

// TestMap_InsertGetRemove covers the basic lifecycle.
func TestMap_InsertGetRemove(t *testing.T) {
	m := ids.NewMap[string]()

	a := m.Insert("alpha")
	b := m.Insert("beta")
	require.NotEqual(t, a, b)
	require.Equal(t, 2, m.Len())

	value, ok := m.Get(a)
	require.True(t, ok)
	require.Equal(t, "alpha", value)
	require.True(t, m.Contains(b))

	value, ok = m.Remove(a)
	require.True(t, ok)
	require.Equal(t, "alpha", value)
	require.False(t, m.Contains(a))
	require.Equal(t, 1, m.Len())

	_, ok = m.Remove(a)
	require.False(t, ok, "removing twice")

	// Freed ids are never reused.
	c := m.Insert("gamma")
	require.NotEqual(t, a, c)
	require.Equal(t, uint64(2), c.Raw())
}

// TestMap_Put distinguishes fresh writes from replacements.
func TestMap_Put(t *testing.T) {
	m := ids.NewMap[string]()
	id := m.Insert("old")

	prev, replaced := m.Put(id, "new")
	require.True(t, replaced)
	require.Equal(t, "old", prev)
	require.Equal(t, "new", m.MustGet(id))

	_, replaced = m.Put(ids.ID[string](77), "stray")
	require.False(t, replaced)
	require.Equal(t, 2, m.Len())
}

// TestMap_MustGetPanics locks in the indexed-access contract.
func TestMap_MustGetPanics(t *testing.T) {
	m := ids.NewMap[string]()
	require.Panics(t, func() { _ = m.MustGet(ids.ID[string](5)) })
}

// TestMap_GetRefAndValuesMut verifies in-place mutation paths.
func TestMap_GetRefAndValuesMut(t *testing.T) {
	m := ids.NewMap[int]()
	id := m.Insert(1)
	m.Insert(2)

	ref, ok := m.GetRef(id)
	require.True(t, ok)
	*ref = 10
	require.Equal(t, 10, m.MustGet(id))

	for v := range m.ValuesMut() {
		*v *= 2
	}
	require.Equal(t, 20, m.MustGet(id))
}

// TestMap_RetainAndIteration exercises filtering and the sorted key snapshot.
func TestMap_RetainAndIteration(t *testing.T) {
	m := ids.MapWithCapacity[int](8)
	for i := 0; i < 8; i++ {
		m.Insert(i)
	}

	m.Retain(func(_ ids.ID[int], v *int) bool { return *v%2 == 0 })
	require.Equal(t, 4, m.Len())

	keys := m.IDs()
	require.True(t, slices.IsSorted(keys))
	require.Len(t, keys, 4)

	total := 0
	for id, v := range m.All() {
		require.True(t, m.Contains(id))
		total += v
	}
	require.Equal(t, 0+2+4+6, total)

	count := 0
	for range m.Values() {
		count++
	}
	require.Equal(t, 4, count)
}

// TestMap_ClearResetsCounter: after Clear the next Insert mints id 0 again.
func TestMap_ClearResetsCounter(t *testing.T) {
	m := ids.NewMap[string]()
	m.Insert("a")
	m.Insert("b")

	m.Clear()
	require.Zero(t, m.Len())
	require.Equal(t, uint64(0), m.Insert("fresh").Raw())
}

// TestMap_Clone: copies are independent but share the counter position.
func TestMap_Clone(t *testing.T) {
	m := ids.NewMap[string]()
	id := m.Insert("shared")

	clone := m.Clone()
	clone.Put(id, "patched")
	require.Equal(t, "shared", m.MustGet(id))

	// Same lineage position: both mint the same next id.
	require.Equal(t, m.Insert("x"), clone.Insert("y"))
}

// TestMap_JSONRoundTrip: payloads survive and the counter resumes past the
// largest persisted id.
func TestMap_JSONRoundTrip(t *testing.T) {
	m := ids.NewMap[string]()
	m.Insert("zero")
	one := m.Insert("one")
	m.Insert("two")
	m.Remove(one)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := ids.NewMap[string]()
	require.NoError(t, json.Unmarshal(data, decoded))
	require.Equal(t, 2, decoded.Len())
	require.Equal(t, "two", decoded.MustGet(ids.ID[string](2)))

	// Largest persisted id is 2, so the next mint must be 3.
	require.Equal(t, uint64(3), decoded.Insert("three").Raw())
}
