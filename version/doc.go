// Package version parses and orders the semantic-version-like strings that
// flow through a description tree: the description file's own dotted
// "major.minor.patch" version, version-control tags of the form
// "release_2.10-7", and underscored persistence-layer identifiers such as
// "1_2_3". All three grammars resolve to the same [Version] value so the
// rest of the core can compare and sort versions without caring which
// source produced them.
//
// # Grammar
//
// Each [Source] strips its own punctuation ('.', '_', '-') and feeds the
// remaining digit groups into major, minor, an optional patch, and an
// optional build number. A literal '-' immediately before the final
// numeric group marks that group as the build number rather than the
// patch: "1.2.3" has patch 3 and no build, while "1.2.3-7" has patch 3 and
// build 7 (git-tag and core-data grammars use this to disambiguate). A
// version string missing either major or minor fails to parse.
//
// # Tags
//
// A [Tag] is derived from a case-sensitive substring search over the raw
// input: "beta_release_" yields [TagReleaseBeta], "release_" (without the
// beta prefix) yields [TagReleaseAppStore], anything else yields
// [TagOther]. This runs independently of which [Source] grammar matched.
//
// # Ordering
//
// [Version.Compare] orders lexicographically over
// (major, minor, patch-or-sentinel, build-or-sentinel, tag-rank), where an
// absent patch or build sorts before any present value.
// [Version.IsMatchingRelease] narrows the comparison to (major, minor,
// patch), ignoring build and tag, and is therefore an equivalence
// relation, not a total order.
package version
