package extension

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/lucidgen/core/descriptions/descerr"
	"github.com/lucidgen/core/stringconfig"
)

// environment is the contents of environment.json.
type environment struct {
	Lexicon      []string `json:"lexicon"`
	EntitySuffix string   `json:"entitySuffix"`
}

// Response is the tagged union written to output.json by an extension and
// read back by [Request].
type Response struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Success reports whether r represents a successful extension run.
func (r Response) Success() bool { return r.Kind == "success" }

var (
	buildMu    sync.Mutex
	built      = map[string]bool{}
	buildGroup singleflight.Group
)

// Request invokes the extension at extensionPath with commandName,
// handing it input as input.json and the current process-wide
// [stringconfig.Config] as environment.json, and returns the raw JSON value
// carried by a success response in output.json.
//
// The extension is built (once per process lifetime, per extension path)
// before being invoked; concurrent requests for the same unbuilt
// extensionPath collapse into a single build via singleflight.
func Request(extensionPath, commandName string, input any) (json.RawMessage, error) {
	scratch, err := os.MkdirTemp(os.TempDir(), "lucidgen-ext-"+uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("extension: create scratch dir: %w", err)
	}

	defer cleanupScratch(scratch)

	if err := writeJSON(filepath.Join(scratch, "input.json"), input); err != nil {
		return nil, err
	}

	cfg := stringconfig.Current()
	if err := writeJSON(filepath.Join(scratch, "environment.json"), environment{
		Lexicon:      cfg.Lexicon,
		EntitySuffix: cfg.EntitySuffix,
	}); err != nil {
		return nil, err
	}

	if err := ensureBuilt(extensionPath); err != nil {
		return nil, descerr.NewExtension(err.Error())
	}

	bin := filepath.Join(extensionPath, ".build", "release", "extension")

	cmd := exec.Command(bin, commandName, scratch) //nolint:gosec // extensionPath/commandName are host-configured, not attacker input.
	cmd.Dir = extensionPath

	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, descerr.NewExtension(fmt.Sprintf("%v: %s", err, out))
	}

	var resp Response

	raw, err := os.ReadFile(filepath.Join(scratch, "output.json"))
	if err != nil {
		return nil, descerr.NewExtension(fmt.Sprintf("read output.json: %v", err))
	}

	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, descerr.NewExtension(fmt.Sprintf("decode output.json: %v", err))
	}

	if !resp.Success() {
		var msg string
		_ = json.Unmarshal(resp.Value, &msg)

		return nil, descerr.NewExtension(msg)
	}

	return resp.Value, nil
}

// ensureBuilt runs the platform release build for extensionPath exactly
// once per process lifetime, tolerating concurrent callers for the same
// path.
func ensureBuilt(extensionPath string) error {
	buildMu.Lock()
	if built[extensionPath] {
		buildMu.Unlock()
		return nil
	}
	buildMu.Unlock()

	_, err, _ := buildGroup.Do(extensionPath, func() (any, error) {
		buildMu.Lock()
		if built[extensionPath] {
			buildMu.Unlock()
			return nil, nil
		}
		buildMu.Unlock()

		cmd := exec.Command("go", "build", "-o", filepath.Join(".build", "release", "extension"), ".") //nolint:gosec
		cmd.Dir = extensionPath

		if out, err := cmd.CombinedOutput(); err != nil {
			return nil, fmt.Errorf("build %s: %w: %s", extensionPath, err, out)
		}

		buildMu.Lock()
		built[extensionPath] = true
		buildMu.Unlock()

		return nil, nil
	})

	return err
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("extension: encode %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("extension: write %s: %w", filepath.Base(path), err)
	}

	return nil
}

func cleanupScratch(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		slog.Warn("extension: failed to clean up scratch directory", slog.String("dir", dir), slog.Any("error", err))
	}
}
