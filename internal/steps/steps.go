// Package steps runs an ordered list of named scaffolding steps. Each step
// reports a tagged outcome; the driver logs every outcome through the console
// and stops only on a fatal one. This makes the mixed fatal/non-fatal policy
// of a scaffolding run an explicit contract rather than scattered control
// flow: per-item failures degrade gracefully, auxiliary failures warn, and
// only genuine precondition or filesystem failures abort.
package steps

import (
	"fmt"

	"github.com/frontforge-labs/frontforge/internal/console"
)

// Status classifies a step outcome.
type Status int

const (
	// Ok means the step completed.
	Ok Status = iota
	// SkippedWithWarning means the step failed but the run continues.
	SkippedWithWarning
	// Fatal means the run stops here.
	Fatal
)

// Result is a step's tagged outcome. Message supplements the step name in
// console output; it may be empty for a plain Ok.
type Result struct {
	Status  Status
	Message string
}

// OkResult is a plain success.
func OkResult() Result { return Result{Status: Ok} }

// Okf is a success with detail.
func Okf(format string, args ...any) Result {
	return Result{Status: Ok, Message: fmt.Sprintf(format, args...)}
}

// Warnf is a non-fatal failure; the driver logs it and continues.
func Warnf(format string, args ...any) Result {
	return Result{Status: SkippedWithWarning, Message: fmt.Sprintf(format, args...)}
}

// Fatalf stops the driver.
func Fatalf(format string, args ...any) Result {
	return Result{Status: Fatal, Message: fmt.Sprintf(format, args...)}
}

// Step is one named unit of a scaffolding run.
type Step struct {
	Name string
	Run  func() Result
}

// Driver executes steps in order against a console.
type Driver struct {
	Console *console.Console
}

// Run executes the steps sequentially. It returns the fatal result and false
// if a step aborted the run, or a zero Result and true if every step ran.
func (d *Driver) Run(list []Step) (Result, bool) {
	for _, s := range list {
		res := s.Run()
		switch res.Status {
		case Ok:
			if res.Message != "" {
				d.Console.Successf("%s: %s", s.Name, res.Message)
			} else {
				d.Console.Successf("%s", s.Name)
			}
		case SkippedWithWarning:
			d.Console.Warnf("%s: %s", s.Name, res.Message)
		case Fatal:
			d.Console.Errorf("%s: %s", s.Name, res.Message)
			return res, false
		}
	}
	return Result{}, true
}
