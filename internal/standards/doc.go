// Package standards carries the embedded standards documents and copies them
// into target projects. The file set is fixed per build: every generated or
// set-up project receives the same documents under docs/standards/, and
// re-copying always overwrites so a target never drifts from the shipped
// versions. Copying is a best-effort batch: one bad file is reported and
// skipped, the rest still land.
package standards
