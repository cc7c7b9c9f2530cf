// Package manifest builds and updates package.json files. The create flow
// constructs a complete manifest from the static dependency tables in
// build.go; the setup flow overlays the standard script entries onto an
// existing manifest without disturbing anything else in the file. Both paths
// can be checked against an embedded JSON Schema.
package manifest
