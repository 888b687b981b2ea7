// Package extension implements the out-of-process generator subprocess
// protocol: a host builds an extension binary once per process and
// invokes it once per command, handing it a scratch directory containing
// input.json and
// environment.json, and reading back output.json.
//
// The host side is [Request]; the extension side is [Respond]. Both speak
// plain encoding/json over files rather than a streaming channel, which
// keeps the protocol easy to widen without changing its logical
// input/output schema -- this implementation keeps the file-drop shape
// but uses [github.com/google/uuid] for scratch-directory names and
// [golang.org/x/sync/singleflight] to collapse concurrent first-builds of
// the same extension path into one `go build` invocation.
package extension
