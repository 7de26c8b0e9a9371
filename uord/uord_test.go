// Package uord_test verifies the order-insensitivity contract of UOrd:
// construction order never matters for equality, hashing, or encoding.
package uord_test

import (
	"encoding/json"
	"testing"

	"github.com/veltran/plexus/uord"
)

//----------------------------------------------------------------------------//
// Construction and symmetry
//----------------------------------------------------------------------------//

// TestNew_Symmetry verifies New(a,b) == New(b,a) and the (min, max) layout.
func TestNew_Symmetry(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int
		min, max int
	}{
		{"Ascending", 2, 7, 2, 7},
		{"Descending", 7, 2, 2, 7},
		{"Negative", 3, -1, -1, 3},
		{"Equal", 5, 5, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := uord.New(tc.a, tc.b)
			if u.Min() != tc.min || u.Max() != tc.max {
				t.Errorf("New(%d,%d) = (%d,%d); want (%d,%d)",
					tc.a, tc.b, u.Min(), u.Max(), tc.min, tc.max)
			}
			if u != uord.New(tc.b, tc.a) {
				t.Errorf("New(%d,%d) != New(%d,%d)", tc.a, tc.b, tc.b, tc.a)
			}
		})
	}
}

// TestNew_MapKeyIdentity: symmetric pairs hash to the same map entry.
func TestNew_MapKeyIdentity(t *testing.T) {
	m := map[uord.UOrd[string]]int{
		uord.New("x", "y"): 1,
	}
	if got, ok := m[uord.New("y", "x")]; !ok || got != 1 {
		t.Fatalf("lookup with swapped order = (%d,%v); want (1,true)", got, ok)
	}
}

// TestNewBy orders by an explicit comparison.
func TestNewBy(t *testing.T) {
	byLen := func(a, b string) bool { return len(a) < len(b) }
	u := uord.NewBy(byLen, "lengthy", "ab")
	if u.Min() != "ab" || u.Max() != "lengthy" {
		t.Errorf("NewBy = (%q,%q); want (ab,lengthy)", u.Min(), u.Max())
	}
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestContainsOtherDistinct covers the element queries.
func TestContainsOtherDistinct(t *testing.T) {
	u := uord.New(4, 9)

	if !u.Contains(4) || !u.Contains(9) || u.Contains(5) {
		t.Error("Contains misreported membership")
	}
	if !u.IsDistinct() {
		t.Error("IsDistinct() = false on distinct pair")
	}
	if degenerate := uord.New(3, 3); degenerate.IsDistinct() {
		t.Error("IsDistinct() = true on degenerate pair")
	}

	if other, ok := u.Other(4); !ok || other != 9 {
		t.Errorf("Other(4) = (%d,%v); want (9,true)", other, ok)
	}
	if other, ok := u.Other(9); !ok || other != 4 {
		t.Errorf("Other(9) = (%d,%v); want (4,true)", other, ok)
	}
	if _, ok := u.Other(1); ok {
		t.Error("Other(1) found a partner in (4,9)")
	}
}

// TestTupleArrayAll verify the export forms agree.
func TestTupleArrayAll(t *testing.T) {
	u := uord.New("b", "a")

	minV, maxV := u.Tuple()
	if minV != "a" || maxV != "b" {
		t.Errorf("Tuple() = (%q,%q); want (a,b)", minV, maxV)
	}
	if u.Array() != [2]string{"a", "b"} {
		t.Errorf("Array() = %v; want [a b]", u.Array())
	}

	var seen []string
	for v := range u.All() {
		seen = append(seen, v)
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("All() yielded %v; want [a b]", seen)
	}

	if s := u.String(); s != "(a, b)" {
		t.Errorf("String() = %q; want (a, b)", s)
	}
}

//----------------------------------------------------------------------------//
// Transforms
//----------------------------------------------------------------------------//

// TestReplace re-normalizes after substitution, covering both-slot hits.
func TestReplace(t *testing.T) {
	cases := []struct {
		name     string
		u        uord.UOrd[int]
		from, to int
		want     uord.UOrd[int]
	}{
		{"MinSlot", uord.New(1, 8), 1, 9, uord.New(8, 9)},
		{"MaxSlot", uord.New(1, 8), 8, 0, uord.New(0, 1)},
		{"NoMatch", uord.New(1, 8), 5, 0, uord.New(1, 8)},
		{"BothSlots", uord.New(4, 4), 4, 2, uord.New(2, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uord.Replace(tc.u, tc.from, tc.to); got != tc.want {
				t.Errorf("Replace(%v,%d,%d) = %v; want %v", tc.u, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

// TestReplaceBy uses an explicit comparison for the re-normalization.
func TestReplaceBy(t *testing.T) {
	desc := func(a, b int) bool { return a > b }
	u := uord.NewBy(desc, 1, 8) // stored as (8, 1) under descending order
	got := uord.ReplaceBy(desc, u, 8, 0)
	if got.Min() != 1 || got.Max() != 0 {
		t.Errorf("ReplaceBy = (%d,%d); want (1,0)", got.Min(), got.Max())
	}
}

// TestMap transforms elements and re-normalizes under the new ordering.
func TestMap(t *testing.T) {
	u := uord.New(2, 5)
	got := uord.Map(u, func(v int) int { return -v })
	if got.Min() != -5 || got.Max() != -2 {
		t.Errorf("Map(negate) = (%d,%d); want (-5,-2)", got.Min(), got.Max())
	}

	lens := uord.Map(uord.New("bb", "a"), func(s string) int { return len(s) })
	if lens != uord.New(1, 2) {
		t.Errorf("Map(len) = %v; want (1, 2)", lens)
	}
}

//----------------------------------------------------------------------------//
// Encoding
//----------------------------------------------------------------------------//

// TestMarshalJSON_SymmetricEncoding: symmetric pairs produce identical bytes.
func TestMarshalJSON_SymmetricEncoding(t *testing.T) {
	ab, err := json.Marshal(uord.New(10, 3))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	ba, err := json.Marshal(uord.New(3, 10))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(ab) != string(ba) {
		t.Errorf("asymmetric encodings: %s vs %s", ab, ba)
	}
	if string(ab) != "[3,10]" {
		t.Errorf("encoding = %s; want [3,10]", ab)
	}
}
