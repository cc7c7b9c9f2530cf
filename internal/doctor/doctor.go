// Package doctor verifies the host tooling the scaffolding flows shell out
// to. It reports presence and minimum versions for git, node, and npm so
// users can fix their environment before a create or setup run trips over it.
package doctor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/frontforge-labs/frontforge/internal/execx"
)

// Tool describes one external binary check.
type Tool struct {
	Name       string
	VersionArg string
	Minimum    string // empty means presence-only
}

// DefaultTools are the binaries the create and setup flows depend on.
var DefaultTools = []Tool{
	{Name: "git", VersionArg: "--version", Minimum: "2.20.0"},
	{Name: "node", VersionArg: "--version", Minimum: "18.0.0"},
	{Name: "npm", VersionArg: "--version", Minimum: "9.0.0"},
}

// CheckResult is the outcome of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Version string // detected version, empty if unparseable
	OK      bool   // found and at or above minimum
	Detail  string
}

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Check probes every tool and returns one result per entry.
func Check(ctx context.Context, runner execx.Runner, tools []Tool) []CheckResult {
	results := make([]CheckResult, 0, len(tools))
	for _, tool := range tools {
		results = append(results, checkOne(ctx, runner, tool))
	}
	return results
}

func checkOne(ctx context.Context, runner execx.Runner, tool Tool) CheckResult {
	res := CheckResult{Tool: tool}

	if !runner.LookPath(tool.Name) {
		res.Detail = "not found on PATH"
		return res
	}
	res.Found = true

	out, err := runner.Run(ctx, tool.Name, []string{tool.VersionArg}, execx.Opts{})
	if err != nil || out.ExitCode != 0 {
		res.Detail = "could not determine version"
		res.OK = tool.Minimum == ""
		return res
	}

	// Tools print versions in different dress: "git version 2.39.2",
	// "v18.17.0", "9.6.7". Pull out the first x.y.z token.
	raw := versionPattern.FindString(strings.TrimSpace(out.Stdout))
	res.Version = raw

	if tool.Minimum == "" {
		res.OK = true
		return res
	}
	if raw == "" {
		res.Detail = "could not parse version output"
		return res
	}

	detected, err := semver.NewVersion(raw)
	if err != nil {
		res.Detail = fmt.Sprintf("unparseable version %q", raw)
		return res
	}
	minimum := semver.MustParse(tool.Minimum)

	if detected.LessThan(minimum) {
		res.Detail = fmt.Sprintf("version %s is below minimum %s", raw, tool.Minimum)
		return res
	}

	res.OK = true
	return res
}
