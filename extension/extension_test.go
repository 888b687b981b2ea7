package extension_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidgen/core/extension"
	"github.com/lucidgen/core/stringconfig"
)

// toyInput/toyOutput mirror a toy extension that reverses input.fields.
type toyInput struct {
	Fields []string `json:"fields"`
}

type toyOutput struct {
	Fields []string `json:"fields"`
}

func reverseHandler(input json.RawMessage) (any, error) {
	var in toyInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, err
	}

	out := toyOutput{Fields: make([]string, len(in.Fields))}
	for i, f := range in.Fields {
		out.Fields[len(in.Fields)-1-i] = f
	}

	return out, nil
}

func writeScratchInput(t *testing.T, dir string, v any) {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.json"), data, 0o600))
}

func TestRespond_Success(t *testing.T) {
	stringconfig.Reset()

	dir := t.TempDir()
	writeScratchInput(t, dir, toyInput{Fields: []string{"a", "b", "c"}})

	err := extension.Respond(dir, reverseHandler)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "output.json"))
	require.NoError(t, err)

	var resp struct {
		Kind  string    `json:"kind"`
		Value toyOutput `json:"value"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))

	assert.Equal(t, "success", resp.Kind)
	assert.Equal(t, []string{"c", "b", "a"}, resp.Value.Fields)
}

func TestRespond_HandlerError(t *testing.T) {
	stringconfig.Reset()

	dir := t.TempDir()
	writeScratchInput(t, dir, toyInput{Fields: []string{"x"}})

	failing := func(json.RawMessage) (any, error) {
		panic("boom")
	}

	err := extension.Respond(dir, failing)
	require.NoError(t, err) // Respond itself never errors just because the handler did.

	raw, err := os.ReadFile(filepath.Join(dir, "output.json"))
	require.NoError(t, err)

	var resp struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))

	assert.Equal(t, "failure", resp.Kind)
	assert.Contains(t, resp.Value, "Extension error:")
}

func TestRespond_InstallsEnvironment(t *testing.T) {
	stringconfig.Reset()

	dir := t.TempDir()
	writeScratchInput(t, dir, toyInput{})

	env := map[string]any{"lexicon": []string{"URL", "ID"}, "entitySuffix": "Entity"}
	data, err := json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "environment.json"), data, 0o600))

	require.NoError(t, extension.Respond(dir, reverseHandler))

	cfg := stringconfig.Current()
	assert.Equal(t, []string{"URL", "ID"}, cfg.Lexicon)
	assert.Equal(t, "Entity", cfg.EntitySuffix)
}

func TestRequest_MissingExtensionFailsCleanly(t *testing.T) {
	stringconfig.Reset()
	stringconfig.Init(stringconfig.Config{})

	_, err := extension.Request(filepath.Join(t.TempDir(), "does-not-exist"), "generate", toyInput{Fields: []string{"a"}})
	require.Error(t, err)
}
