package execx

import (
	"context"
	"fmt"
)

// Call records one Run invocation against a FakeRunner.
type Call struct {
	Name string
	Args []string
	Opts Opts
}

// FakeRunner is a scripted Runner for tests. Results are keyed by binary
// name; unscripted binaries succeed with empty output. Missing maps a binary
// out of the fake PATH.
type FakeRunner struct {
	Results map[string]Result
	Errs    map[string]error
	Missing map[string]bool
	Calls   []Call
}

// NewFakeRunner returns an empty fake where every binary exists and succeeds.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Results: map[string]Result{},
		Errs:    map[string]error{},
		Missing: map[string]bool{},
	}
}

// Run records the call and returns the scripted result for name.
func (f *FakeRunner) Run(_ context.Context, name string, args []string, opts Opts) (Result, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args, Opts: opts})
	if f.Missing[name] {
		return Result{}, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	if err, ok := f.Errs[name]; ok {
		return Result{}, err
	}
	return f.Results[name], nil
}

// LookPath honors the Missing map.
func (f *FakeRunner) LookPath(name string) bool {
	return !f.Missing[name]
}
