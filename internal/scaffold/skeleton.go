package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Data holds the template variables available to skeleton templates.
type Data struct {
	Name  string // project name as given, e.g. "demo-app"
	Title string // derived display title, e.g. "Demo App"
	Year  int
}

// NewData derives the display fields from the project name.
func NewData(name string) *Data {
	title := cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
	return &Data{
		Name:  name,
		Title: title,
		Year:  time.Now().Year(),
	}
}

const skeletonRoot = "templates/skeleton"

// EmitSkeleton writes the application skeleton under root. The target is
// fresh (create flow only), so every file is written without overwrite
// checks. Output depends on nothing but the project name: the same name
// always produces the same bytes.
func EmitSkeleton(root string, data *Data) ([]string, error) {
	var written []string

	err := fs.WalkDir(scaffoldFS, skeletonRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(skeletonRoot, path)
		if err != nil {
			return err
		}

		out, err := renderFile(path, rel, data)
		if err != nil {
			return err
		}

		dst := filepath.Join(root, strings.TrimSuffix(rel, ".tmpl"))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, out, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}

		written = append(written, strings.TrimSuffix(rel, ".tmpl"))
		return nil
	})
	if err != nil {
		return written, err
	}
	return written, nil
}

// WriteReadme renders the project README. Kept separate from EmitSkeleton so
// the driver reports it as its own step.
func WriteReadme(root string, data *Data) error {
	out, err := renderFile("templates/readme/README.md.tmpl", "README.md.tmpl", data)
	if err != nil {
		return err
	}
	dst := filepath.Join(root, "README.md")
	if err := os.WriteFile(dst, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// renderFile reads an embedded file and, for .tmpl names, runs it through
// text/template. Anything else passes through verbatim; JSX files stay
// verbatim so their brace syntax never reaches the template parser.
func renderFile(path, name string, data *Data) ([]byte, error) {
	raw, err := fs.ReadFile(scaffoldFS, path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	if !strings.HasSuffix(name, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(filepath.Base(name)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
