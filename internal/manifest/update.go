package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissing reports that the target directory has no manifest to update.
// Updating a manifest that does not exist is a precondition violation, not a
// per-item failure, so callers abort on it.
var ErrMissing = errors.New("no package.json found")

// StandardScripts are the script entries the setup flow installs. Insertion
// is by key: an existing entry under the same key is overwritten, never
// duplicated, and re-running setup is a no-op after the first run.
var StandardScripts = map[string]string{
	"lint:js":    "eslint 'src/**/*.{ts,tsx}'",
	"lint:css":   "stylelint 'src/**/*.{css,ts,tsx}'",
	"lint":       "npm run lint:js && npm run lint:css",
	"format":     "prettier --write 'src/**/*.{ts,tsx,css,json,md}'",
	"type-check": "tsc --noEmit",
}

// UpdateScripts overlays scripts onto the manifest in dir. All other manifest
// content passes through untouched. A malformed manifest aborts before
// anything is written.
func UpdateScripts(dir string, scripts map[string]string) error {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w in %s", ErrMissing, dir)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	// Top level stays raw so unrelated members round-trip byte-for-byte
	// inside their values; only the scripts object is decoded.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	// "null" unmarshals into a nil map without error.
	if doc == nil {
		return fmt.Errorf("parsing %s: not a JSON object", path)
	}

	existing := map[string]string{}
	if raw, ok := doc["scripts"]; ok {
		if err := json.Unmarshal(raw, &existing); err != nil {
			return fmt.Errorf("parsing scripts in %s: %w", path, err)
		}
	}

	for k, v := range scripts {
		existing[k] = v
	}

	merged, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("encoding scripts: %w", err)
	}
	doc["scripts"] = merged

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
