// Package uord provides UOrd, a value type holding exactly two elements of
// the same type with order-independent identity.
//
// UOrd stores its elements internally as (min, max) under the element type's
// ordering, normalized once at construction, so New(a, b) and New(b, a)
// produce equal values that hash identically as map keys and serialize to the
// same encoding:
//
//	uord.New(2, 7) == uord.New(7, 2) // true
//
// New covers element types with a natural ordering (cmp.Ordered); NewBy
// accepts an explicit comparison for everything else. Operations that must
// re-normalize — Replace and Map — likewise come in Ordered and By flavours,
// as free functions because Go methods cannot tighten a type constraint.
//
// A pair whose two slots are equal is legal at this layer; consumers that
// need distinct elements (such as a graph link key) check IsDistinct.
package uord
