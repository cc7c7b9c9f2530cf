package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readGenerated(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestNewData(t *testing.T) {
	t.Run("hyphenated name", func(t *testing.T) {
		d := NewData("demo-app")
		if d.Name != "demo-app" {
			t.Errorf("Name = %q, want %q", d.Name, "demo-app")
		}
		if d.Title != "Demo App" {
			t.Errorf("Title = %q, want %q", d.Title, "Demo App")
		}
	})

	t.Run("single word", func(t *testing.T) {
		d := NewData("dashboard")
		if d.Title != "Dashboard" {
			t.Errorf("Title = %q, want %q", d.Title, "Dashboard")
		}
	})

	t.Run("year is populated", func(t *testing.T) {
		if NewData("x").Year == 0 {
			t.Error("Year should not be zero")
		}
	})
}

func TestEmitSkeleton(t *testing.T) {
	root := t.TempDir()

	files, err := EmitSkeleton(root, NewData("demo-app"))
	if err != nil {
		t.Fatalf("EmitSkeleton() error: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("EmitSkeleton() wrote no files")
	}

	expected := []string{
		"src/index.tsx",
		"src/App.tsx",
		"src/components/layout/Layout.tsx",
		"src/components/layout/Header.tsx",
		"src/components/layout/Footer.tsx",
		"src/components/common/ErrorBoundary.tsx",
		"src/pages/Home.tsx",
		"src/pages/NotFound.tsx",
		"src/services/api.ts",
		"src/styles/theme.ts",
		"src/styles/GlobalStyle.ts",
		"public/index.html",
	}
	for _, rel := range expected {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}

	// Templated files carry the derived title.
	app := readGenerated(t, root, "src/App.tsx")
	if !strings.Contains(app, `title="Demo App"`) {
		t.Error("App.tsx should carry the derived project title")
	}
	html := readGenerated(t, root, "public/index.html")
	if !strings.Contains(html, "<title>Demo App</title>") {
		t.Error("index.html should carry the derived project title")
	}

	// No template syntax may leak into output.
	for _, rel := range expected {
		if out := readGenerated(t, root, rel); strings.Contains(out, "{{.") {
			t.Errorf("%s contains unexpanded template syntax", rel)
		}
	}
}

func TestEmitSkeletonDeterministicAcrossNames(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()

	if _, err := EmitSkeleton(rootA, NewData("alpha-app")); err != nil {
		t.Fatalf("EmitSkeleton(alpha) error: %v", err)
	}
	if _, err := EmitSkeleton(rootB, NewData("beta-app")); err != nil {
		t.Fatalf("EmitSkeleton(beta) error: %v", err)
	}

	// Verbatim (non-templated) files are byte-identical regardless of name.
	verbatim := []string{
		"src/index.tsx",
		"src/components/layout/Layout.tsx",
		"src/components/common/ErrorBoundary.tsx",
		"src/pages/NotFound.tsx",
		"src/services/api.ts",
		"src/styles/theme.ts",
		"src/styles/GlobalStyle.ts",
	}
	for _, rel := range verbatim {
		a := readGenerated(t, rootA, rel)
		b := readGenerated(t, rootB, rel)
		if a != b {
			t.Errorf("%s differs between projects; should be name-independent", rel)
		}
	}
}

func TestWriteReadme(t *testing.T) {
	root := t.TempDir()

	if err := WriteReadme(root, NewData("demo-app")); err != nil {
		t.Fatalf("WriteReadme() error: %v", err)
	}

	readme := readGenerated(t, root, "README.md")
	if !strings.HasPrefix(readme, "# Demo App") {
		t.Errorf("README should open with the project title, got %q", readme[:40])
	}
	if !strings.Contains(readme, "docs/standards") {
		t.Error("README should point at the standards documents")
	}
}
