package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file name in every target directory.
const FileName = "package.json"

// Pinned dependency ranges for generated projects. One table per manifest
// section; Build copies them so callers cannot mutate the originals.
var (
	runtimeDeps = map[string]string{
		"axios":             "^1.6.0",
		"react":             "^18.2.0",
		"react-dom":         "^18.2.0",
		"react-router-dom":  "^6.20.0",
		"react-scripts":     "5.0.1",
		"styled-components": "^6.1.0",
	}

	devDeps = map[string]string{
		"@types/node":                      "^20.10.0",
		"@types/react":                     "^18.2.0",
		"@types/react-dom":                 "^18.2.0",
		"@types/styled-components":         "^5.1.0",
		"@typescript-eslint/eslint-plugin": "^6.13.0",
		"@typescript-eslint/parser":        "^6.13.0",
		"eslint":                           "^8.54.0",
		"eslint-config-prettier":           "^9.0.0",
		"eslint-plugin-jsx-a11y":           "^6.8.0",
		"eslint-plugin-react":              "^7.33.0",
		"eslint-plugin-react-hooks":        "^4.6.0",
		"husky":                            "^8.0.0",
		"prettier":                         "^3.1.0",
		"stylelint":                        "^15.11.0",
		"stylelint-config-standard":        "^34.0.0",
		"typescript":                       "^5.3.0",
	}

	createScripts = map[string]string{
		"start":   "react-scripts start",
		"build":   "react-scripts build",
		"test":    "react-scripts test",
		"eject":   "react-scripts eject",
		"prepare": "husky install",
	}
)

// Build constructs a complete manifest for a new project. Script entries are
// the react-scripts set plus the same standard entries the setup flow
// installs, so both flows agree on lint, format, and type-check commands.
func Build(name string) *PackageJSON {
	scripts := copyTable(createScripts)
	for k, v := range StandardScripts {
		scripts[k] = v
	}
	return &PackageJSON{
		Name:         name,
		Version:      "0.1.0",
		Private:      true,
		Dependencies: copyTable(runtimeDeps),
		Scripts:      scripts,
		ESLintConfig: &ESLintConfig{
			Extends: []string{"react-app", "react-app/jest"},
		},
		Browserslist: &Browserslist{
			Production:  []string{">0.2%", "not dead", "not op_mini all"},
			Development: []string{"last 1 chrome version", "last 1 firefox version", "last 1 safari version"},
		},
		DevDependencies: copyTable(devDeps),
	}
}

// Encode serializes the manifest with two-space indentation and a trailing
// newline, matching what npm itself writes.
func (p *PackageJSON) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile builds the manifest for name and writes it to dir/package.json.
func WriteFile(dir, name string) error {
	data, err := Build(name).Encode()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func copyTable(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
