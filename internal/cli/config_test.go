package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/frontforge-labs/frontforge/internal/config"
)

func TestConfigSetAndGet(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FRONTFORGE_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()

	if err := configSetCmd.RunE(configSetCmd, []string{config.KeyPackageManager, "yarn"}); err != nil {
		t.Fatalf("config set error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if got := config.PackageManager(); got != "yarn" {
		t.Errorf("PackageManager() = %q, want %q", got, "yarn")
	}

	if err := configGetCmd.RunE(configGetCmd, []string{config.KeyPackageManager}); err != nil {
		t.Errorf("config get error: %v", err)
	}
}

func TestConfigSetRequiresKeyAndValue(t *testing.T) {
	if err := configSetCmd.Args(configSetCmd, []string{"color"}); err == nil {
		t.Error("config set should require a key and a value")
	}
	if err := configGetCmd.Args(configGetCmd, []string{}); err == nil {
		t.Error("config get should require a key")
	}
}
