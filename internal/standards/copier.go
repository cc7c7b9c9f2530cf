package standards

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed docs
var docsFS embed.FS

// Entry maps a document in the source FS to its relative path under the
// target directory.
type Entry struct {
	Source string
	Dest   string
}

// DestDir is where standards documents live inside every target project.
const DestDir = "docs/standards"

// documents is the fixed file set shipped with this build. Order does not
// matter; the files are independent.
var documents = []string{
	"coding-conventions.md",
	"accessibility.md",
	"api-interaction.md",
	"sql-conventions.md",
	"css-conventions.md",
	"testing-standards.md",
}

// DefaultEntries returns the shipped standards file set.
func DefaultEntries() []Entry {
	entries := make([]Entry, 0, len(documents))
	for _, name := range documents {
		entries = append(entries, Entry{
			Source: "docs/" + name,
			Dest:   filepath.Join(DestDir, name),
		})
	}
	return entries
}

// Copier copies a file set from a source FS into a target directory.
// Production code uses NewCopier (embedded docs); tests may substitute any
// fs.FS and entry list.
type Copier struct {
	Source  fs.FS
	Entries []Entry
}

// NewCopier returns a Copier over the embedded standards documents.
func NewCopier() *Copier {
	return &Copier{Source: docsFS, Entries: DefaultEntries()}
}

// Failure records one entry that could not be copied.
type Failure struct {
	Entry Entry
	Err   error
}

// CopyAll copies every entry into root, overwriting existing destinations.
// Failures are collected per entry and never abort the batch; the returned
// slice is empty on full success.
func (c *Copier) CopyAll(root string) []Failure {
	var failures []Failure
	for _, e := range c.Entries {
		if err := c.copyOne(root, e); err != nil {
			failures = append(failures, Failure{Entry: e, Err: err})
		}
	}
	return failures
}

func (c *Copier) copyOne(root string, e Entry) error {
	data, err := fs.ReadFile(c.Source, e.Source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", e.Source, err)
	}

	dst := filepath.Join(root, e.Dest)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
