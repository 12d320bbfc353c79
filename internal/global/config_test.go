package global

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !config.Color || config.Debug || config.LogFiles != maxLogs || config.LogMaxBytes != maxLogSize {
		t.Fatalf("unexpected defaults %+v", config)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the config file to be created: %s", err)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{"debug": true, "log_dir": "/tmp/dondozo-logs", "branch_on_damage": true, "color": false}`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !config.Debug || !config.BranchOnDamage || config.Color || config.LogDir != "/tmp/dondozo-logs" {
		t.Fatalf("config file was not applied: %+v", config)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := SaveConfig(path, Config{BranchOnDamage: false, LogFiles: 4}); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DONDOZO_BRANCH_ON_DAMAGE", "true")
	t.Setenv("DONDOZO_LOG_FILES", "7")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !config.BranchOnDamage || config.LogFiles != 7 {
		t.Fatalf("environment was not applied: %+v", config)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{debug"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
