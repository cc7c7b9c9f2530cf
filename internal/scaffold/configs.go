package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// configFile maps an embedded config template to its destination under the
// target directory. Mode matters for the pre-commit hook, which must be
// executable.
type configFile struct {
	Source string
	Dest   string
	Mode   os.FileMode
}

// configFiles is the fixed config set, identical for create and setup.
// Content is literal: no templating, no conditionals on target state.
var configFiles = []configFile{
	{Source: "templates/config/eslintrc.js", Dest: ".eslintrc.js", Mode: 0644},
	{Source: "templates/config/prettierrc", Dest: ".prettierrc", Mode: 0644},
	{Source: "templates/config/stylelintrc.json", Dest: ".stylelintrc.json", Mode: 0644},
	{Source: "templates/config/tsconfig.json", Dest: "tsconfig.json", Mode: 0644},
	{Source: "templates/config/env.example", Dest: ".env.example", Mode: 0644},
	{Source: "templates/config/gitignore", Dest: ".gitignore", Mode: 0644},
	{Source: "templates/config/pre-commit", Dest: ".husky/pre-commit", Mode: 0755},
}

// ConfigFailure records one config file that could not be written.
type ConfigFailure struct {
	Dest string
	Err  error
}

// EmitConfigs writes the fixed config file set under root, overwriting
// whatever is there. Each write is fault-isolated: a failed file is reported
// and the rest are still attempted.
func EmitConfigs(root string) []ConfigFailure {
	var failures []ConfigFailure
	for _, cf := range configFiles {
		if err := emitConfig(root, cf); err != nil {
			failures = append(failures, ConfigFailure{Dest: cf.Dest, Err: err})
		}
	}
	return failures
}

func emitConfig(root string, cf configFile) error {
	data, err := fs.ReadFile(scaffoldFS, cf.Source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cf.Source, err)
	}

	dst := filepath.Join(root, cf.Dest)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}

	if err := os.WriteFile(dst, data, cf.Mode); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// ConfigDests lists the destination paths EmitConfigs writes, for reporting.
func ConfigDests() []string {
	dests := make([]string, 0, len(configFiles))
	for _, cf := range configFiles {
		dests = append(dests, cf.Dest)
	}
	return dests
}
