// Package stringconfig holds the process-wide string-transformation
// configuration -- a lexicon of vocabulary terms and an entity-type name
// suffix -- and the pure name-transformation helpers that consult it.
//
// The configuration is write-once: [Init] installs it before any parallel
// access begins (host process startup, or an extension responder's
// environment.json load), and [Current] reads it
// thereafter. Every transformation that consults the configuration
// ([CamelCase], [PascalCase], [EntityTypeName], [SafeVariableName]) accepts
// an explicit [Config] parameter so callers that already have one in hand (e.g. an
// extension responder that just decoded environment.json) never need to
// round-trip through the global singleton; [Current] is a convenience for
// callers that don't.
package stringconfig
