package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectDirs is the directory tree every created project starts with,
// relative to the project root. Order is irrelevant; the subtrees are
// independent.
var ProjectDirs = []string{
	"src/components/common",
	"src/components/layout",
	"src/contexts",
	"src/hooks",
	"src/pages",
	"src/services",
	"src/styles",
	"src/types",
	"src/utils",
	"src/assets/images",
	"src/assets/icons",
	"src/assets/fonts",
	"tests/unit",
	"tests/integration",
	"tests/fixtures",
	"tests/e2e",
	"docs/standards",
	"public",
}

// DirFailure records one directory that could not be created.
type DirFailure struct {
	Path string
	Err  error
}

// EnsureDirs creates each relative directory under root, intermediate
// segments included. Existing directories are left alone. A failure on one
// directory never stops the others; failures come back per path.
func EnsureDirs(root string, dirs []string) []DirFailure {
	var failures []DirFailure
	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			failures = append(failures, DirFailure{
				Path: dir,
				Err:  fmt.Errorf("creating %s: %w", path, err),
			})
		}
	}
	return failures
}
