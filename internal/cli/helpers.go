package cli

import (
	"github.com/frontforge-labs/frontforge/internal/console"
	"github.com/frontforge-labs/frontforge/internal/manifest"
	"github.com/frontforge-labs/frontforge/internal/scaffold"
	"github.com/frontforge-labs/frontforge/internal/standards"
	"github.com/frontforge-labs/frontforge/internal/steps"
)

// ensureDirs builds the project directory layout, logging every failed
// directory by name. Partial failure degrades the step.
func ensureDirs(out *console.Console, target string) steps.Result {
	failures := scaffold.EnsureDirs(target, scaffold.ProjectDirs)
	for _, f := range failures {
		out.Errorf("could not create %s: %v", f.Path, f.Err)
	}
	total := len(scaffold.ProjectDirs)
	created := total - len(failures)
	if len(failures) > 0 {
		return steps.Warnf("%d of %d directories", created, total)
	}
	return steps.Okf("%d directories", created)
}

// copyStandards runs the best-effort standards batch, logging every failed
// file by name. Partial failure degrades the step, it never fails it.
func copyStandards(out *console.Console, target string) steps.Result {
	copier := standards.NewCopier()
	failures := copier.CopyAll(target)
	for _, f := range failures {
		out.Errorf("could not copy %s: %v", f.Entry.Dest, f.Err)
	}
	copied := len(copier.Entries) - len(failures)
	if len(failures) > 0 {
		return steps.Warnf("%d of %d documents copied", copied, len(copier.Entries))
	}
	return steps.Okf("%d documents", copied)
}

// emitConfigs writes the fixed config set, logging every failed file by name.
func emitConfigs(out *console.Console, target string) steps.Result {
	failures := scaffold.EmitConfigs(target)
	for _, f := range failures {
		out.Errorf("could not write %s: %v", f.Dest, f.Err)
	}
	total := len(scaffold.ConfigDests())
	written := total - len(failures)
	if len(failures) > 0 {
		return steps.Warnf("%d of %d files written", written, total)
	}
	return steps.Okf("%d files", written)
}

// warnManifestIssues schema-checks a manifest and reports findings as
// warnings. Validation trouble never fails a run; the file is already on
// disk and correct by construction in the create flow.
func warnManifestIssues(out *console.Console, path string) {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		out.Warnf("could not validate %s: %v", path, err)
		return
	}
	for _, issue := range result.Issues {
		if issue.Path != "" {
			out.Warnf("%s: %s: %s", path, issue.Path, issue.Message)
		} else {
			out.Warnf("%s: %s", path, issue.Message)
		}
	}
}
