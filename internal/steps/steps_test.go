package steps

import (
	"bytes"
	"strings"
	"testing"

	"github.com/frontforge-labs/frontforge/internal/console"
)

func newTestDriver() (*Driver, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Driver{Console: console.New(console.Options{Writer: &buf, Color: false})}, &buf
}

func TestDriverRunsAllOnSuccess(t *testing.T) {
	driver, buf := newTestDriver()

	var ran []string
	list := []Step{
		{Name: "first", Run: func() Result { ran = append(ran, "first"); return OkResult() }},
		{Name: "second", Run: func() Result { ran = append(ran, "second"); return Okf("%d items", 3) }},
	}

	res, ok := driver.Run(list)
	if !ok {
		t.Fatalf("Run() aborted: %v", res)
	}
	if len(ran) != 2 {
		t.Errorf("ran %d steps, want 2", len(ran))
	}
	out := buf.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "3 items") {
		t.Errorf("output missing step reporting: %q", out)
	}
}

func TestDriverContinuesPastWarning(t *testing.T) {
	driver, buf := newTestDriver()

	var reachedLast bool
	list := []Step{
		{Name: "flaky", Run: func() Result { return Warnf("git not found") }},
		{Name: "last", Run: func() Result { reachedLast = true; return OkResult() }},
	}

	if res, ok := driver.Run(list); !ok {
		t.Fatalf("Run() aborted on warning: %v", res)
	}
	if !reachedLast {
		t.Error("warning should not stop the run")
	}
	if !strings.Contains(buf.String(), "git not found") {
		t.Errorf("warning message not reported: %q", buf.String())
	}
}

func TestDriverStopsOnFatal(t *testing.T) {
	driver, buf := newTestDriver()

	var reachedLast bool
	list := []Step{
		{Name: "doomed", Run: func() Result { return Fatalf("disk full") }},
		{Name: "last", Run: func() Result { reachedLast = true; return OkResult() }},
	}

	res, ok := driver.Run(list)
	if ok {
		t.Fatal("Run() should report failure on fatal step")
	}
	if res.Status != Fatal || res.Message != "disk full" {
		t.Errorf("result = %+v, want fatal 'disk full'", res)
	}
	if reachedLast {
		t.Error("fatal step must stop the run")
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("fatal message not reported: %q", buf.String())
	}
}
