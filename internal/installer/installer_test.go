package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/frontforge-labs/frontforge/internal/execx"
)

func TestInstallDevRunsPackageManager(t *testing.T) {
	fake := execx.NewFakeRunner()

	err := InstallDev(context.Background(), fake, "npm", "/tmp/proj", []string{"eslint", "prettier"})
	if err != nil {
		t.Fatalf("InstallDev() error: %v", err)
	}

	if len(fake.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(fake.Calls))
	}
	call := fake.Calls[0]
	if call.Name != "npm" {
		t.Errorf("binary = %q, want npm", call.Name)
	}
	want := []string{"install", "--save-dev", "eslint", "prettier"}
	if len(call.Args) != len(want) {
		t.Fatalf("args = %v, want %v", call.Args, want)
	}
	for i := range want {
		if call.Args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, call.Args[i], want[i])
		}
	}
	if call.Opts.Dir != "/tmp/proj" {
		t.Errorf("dir = %q, want /tmp/proj", call.Opts.Dir)
	}
}

func TestInstallDevDefaultsToNpm(t *testing.T) {
	fake := execx.NewFakeRunner()

	if err := InstallDev(context.Background(), fake, "", "/tmp/proj", []string{"eslint"}); err != nil {
		t.Fatalf("InstallDev() error: %v", err)
	}
	if fake.Calls[0].Name != "npm" {
		t.Errorf("binary = %q, want npm default", fake.Calls[0].Name)
	}
}

func TestInstallDevSkipsWhenManagerMissing(t *testing.T) {
	fake := execx.NewFakeRunner()
	fake.Missing["npm"] = true

	err := InstallDev(context.Background(), fake, "npm", "/tmp/proj", []string{"eslint"})

	var skipped *ErrSkipped
	if !errors.As(err, &skipped) {
		t.Fatalf("error = %v, want ErrSkipped", err)
	}
	if len(fake.Calls) != 0 {
		t.Errorf("no install should run without the package manager, got %d calls", len(fake.Calls))
	}
}

func TestInstallDevNonzeroExit(t *testing.T) {
	fake := execx.NewFakeRunner()
	fake.Results["npm"] = execx.Result{ExitCode: 1, Stderr: "ERESOLVE unable to resolve dependency tree"}

	err := InstallDev(context.Background(), fake, "npm", "/tmp/proj", []string{"eslint"})
	if err == nil {
		t.Fatal("expected error for nonzero install exit")
	}
	var skipped *ErrSkipped
	if errors.As(err, &skipped) {
		t.Error("a real install failure is not a skip")
	}
}

func TestInstallDevNoPackages(t *testing.T) {
	fake := execx.NewFakeRunner()

	if err := InstallDev(context.Background(), fake, "npm", "/tmp/proj", nil); err != nil {
		t.Fatalf("InstallDev() error: %v", err)
	}
	if len(fake.Calls) != 0 {
		t.Errorf("empty package list should not invoke the manager, got %d calls", len(fake.Calls))
	}
}
