package manifest

// PackageJSON models the manifest the create flow writes. Field order here is
// the serialization order, so generated files are reproducible and diff
// cleanly under review. Map-valued members serialize with sorted keys.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	Scripts         map[string]string `json:"scripts"`
	ESLintConfig    *ESLintConfig     `json:"eslintConfig,omitempty"`
	Browserslist    *Browserslist     `json:"browserslist,omitempty"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ESLintConfig is the manifest-embedded lint configuration block.
type ESLintConfig struct {
	Extends []string `json:"extends"`
}

// Browserslist declares the supported browser matrix per build environment.
type Browserslist struct {
	Production  []string `json:"production"`
	Development []string `json:"development"`
}
