package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Port    int           `envconfig:"PORT" default:"8000"`
	DataDir string        `envconfig:"DATA_DIR" default:"data"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Model   string        `envconfig:"MODEL"`
}

func TestProcessDefaults(t *testing.T) {
	conf, err := Process[testConfig]("CFGTEST_DEFAULTS")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if conf.Port != 8000 || conf.DataDir != "data" || conf.Timeout != 30*time.Second {
		t.Fatalf("unexpected defaults: %#v", conf)
	}
}

func TestProcessReadsPrefixedVariables(t *testing.T) {
	t.Setenv("CFGTEST_PORT", "9090")
	t.Setenv("CFGTEST_MODEL", "google/gemini-2.5-flash")

	conf, err := Process[testConfig]("CFGTEST")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if conf.Port != 9090 || conf.Model != "google/gemini-2.5-flash" {
		t.Fatalf("unexpected config: %#v", conf)
	}
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "CFGFILE_PORT=7070\nCFGFILE_MODEL=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("CFGFILE_MODEL", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("CFGFILE_PORT") })

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}

	conf, err := Process[testConfig]("CFGFILE")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if conf.Port != 7070 {
		t.Fatalf("Port = %d, want 7070", conf.Port)
	}
	if conf.Model != "from-env" {
		t.Fatalf("Model = %q, want from-env", conf.Model)
	}
}

func TestLoadEnvFileMissingExplicitPath(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing env file")
	}
}
