// Package descriptions holds the in-memory schema a code generator works
// from: entities, named value subtypes, endpoint payload shapes, output
// targets, and the aggregate ("Descriptions") that binds them together with
// name-based indexes.
//
// Every type in this package is an algebraic sum or product type. Go has
// no native sum types, so each variant group (property type, identifier
// type, default value, subtype items, cache size, base key) is modeled as
// a struct carrying a discriminating Kind field plus the payload fields
// for whichever variant is active; construct one with its New* function
// rather than composing the struct literal by hand, and dispatch on Kind
// with an exhaustive switch.
//
// The tree built by this package is immutable once constructed: build it
// once via [descriptions/serde].Decode, then read it for the lifetime of a
// generation run. [Descriptions]'s name indexes are lazily memoized on
// first lookup and are safe for concurrent reads thereafter (the
// memoization itself is guarded, not lock-free).
package descriptions
