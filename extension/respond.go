package extension

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucidgen/core/stringconfig"
)

// Handler is an extension's command implementation: it receives the raw
// input.json bytes and returns a value to serialize as output.json, or an
// error.
type Handler func(input json.RawMessage) (any, error)

// Respond is the extension side of the protocol: it reads
// environment.json from ioPath and installs it as the process-wide
// [stringconfig.Config], reads input.json, invokes handler, and writes
// output.json as either a success or failure [Response]. A handler error
// (or a panic recovered from handler) is converted to a failure response
// carrying "Extension error: <error>" -- Respond never lets a handler
// failure escape as an uncaught process abort.
func Respond(ioPath string, handler Handler) (err error) {
	var env environment

	envData, readErr := os.ReadFile(filepath.Join(ioPath, "environment.json"))
	if readErr == nil {
		_ = json.Unmarshal(envData, &env)

		stringconfig.Reset()
		stringconfig.Init(stringconfig.Config{Lexicon: env.Lexicon, EntitySuffix: env.EntitySuffix})
	}

	input, readErr := os.ReadFile(filepath.Join(ioPath, "input.json"))
	if readErr != nil {
		return writeResponse(ioPath, nil, fmt.Errorf("read input.json: %w", readErr))
	}

	output, handlerErr := invoke(handler, input)

	return writeResponse(ioPath, output, handlerErr)
}

// invoke calls handler, converting any panic into an error so Respond's
// caller never sees an uncaught abort.
func invoke(handler Handler, input json.RawMessage) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return handler(input)
}

func writeResponse(ioPath string, output any, handlerErr error) error {
	var resp struct {
		Kind  string `json:"kind"`
		Value any    `json:"value,omitempty"`
	}

	if handlerErr != nil {
		resp.Kind = "failure"
		resp.Value = fmt.Sprintf("Extension error: %v", handlerErr)
	} else {
		resp.Kind = "success"
		resp.Value = output
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("extension: encode output.json: %w", err)
	}

	return os.WriteFile(filepath.Join(ioPath, "output.json"), data, 0o600)
}
