// Package cli wires the cobra command tree: create, setup, doctor, and
// version. Commands handle argument validation and step orchestration and
// delegate the real work to the scaffold, standards, manifest, git, and
// installer packages.
package cli
