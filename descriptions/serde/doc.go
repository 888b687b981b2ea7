// Package serde deserializes and re-serializes a [descriptions.Descriptions]
// tree from/to a lossy-lenient, backward-compatible textual format that
// accepts both camelCase and snake_case keys and tolerates legacy field
// aliases.
//
// Decoding goes through two layers: [github.com/goccy/go-yaml] parses the
// input bytes (YAML is a JSON superset, so the same decoder handles both)
// into a generic `map[string]any` tree, then this package's own
// alias-resolving, defaulting, and cross-validating field readers build the
// typed [descriptions.Descriptions] value. Encoding walks the typed tree
// back into a `map[string]any` and renders it with `encoding/json`, which
// is the wire format the extension protocol and downstream generator
// tooling both expect.
//
// There is no partial or recovered decode: the first error aborts the whole
// call. Structural and validation errors are [descerr.Error] values; YAML
// syntax errors and version-string parse errors
// ([version.ErrCouldNotFormFromString]) are returned as ordinary wrapped
// errors.
package serde
