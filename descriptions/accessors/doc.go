// Package accessors implements the pure, non-caching derived-fact
// computations generators consume from a [descriptions.Descriptions]
// aggregate: property partitioning, relationship-graph walks with cycle
// detection, version-history folds, and endpoint-shape classification.
//
// Every function here is a pure computation over its arguments; none of
// them cache or mutate the aggregate. Graph walks that can cycle (entity
// relationships form a directed graph and cycles are legal) are guarded by
// a visited-name set or memo map: [HasAnyLazy] and [HasVoidMetadata] take
// theirs from the caller, while [ExtractablePropertyEntities] and
// [HasRelationshipLoop] build a fresh one on each call.
package accessors
