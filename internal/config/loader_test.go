package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	loader := NewLoader()

	// Point the loader at an empty search path set so host configs
	// cannot leak into the test.
	loader.configPaths = []string{filepath.Join(t.TempDir(), "absent.yaml")}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Input.LogFile != "/var/log/auth.log" {
		t.Errorf("want default log file, got %s", cfg.Input.LogFile)
	}
	if cfg.Analysis.TopN != 10 {
		t.Errorf("want default top N 10, got %d", cfg.Analysis.TopN)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: "1.0"
input:
  log_file: /tmp/test-auth.log
analysis:
  top_n: 25
output:
  default_format: json
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Input.LogFile != "/tmp/test-auth.log" {
		t.Errorf("want /tmp/test-auth.log, got %s", cfg.Input.LogFile)
	}
	if cfg.Analysis.TopN != 25 {
		t.Errorf("want top N 25, got %d", cfg.Analysis.TopN)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("want format json, got %s", cfg.Output.DefaultFormat)
	}
	// Unset values keep defaults.
	if cfg.Input.MaxLineLength != 1024*1024 {
		t.Errorf("want default max line length, got %d", cfg.Input.MaxLineLength)
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output:
  default_format: xml
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader().LoadConfig(path); err == nil {
		t.Error("expected validation error for invalid format")
	}
}

func TestLoadConfigRejectsNonYAMLPath(t *testing.T) {
	if _, err := NewLoader().LoadConfig("/etc/passwd"); err == nil {
		t.Error("expected error for non-YAML config path")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AUTHSUM_INPUT_LOG_FILE", "/srv/logs/secure")
	t.Setenv("AUTHSUM_ANALYSIS_TOP_N", "3")
	t.Setenv("AUTHSUM_OUTPUT_VERBOSE", "true")

	loader := NewLoader()
	loader.configPaths = []string{filepath.Join(t.TempDir(), "absent.yaml")}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Input.LogFile != "/srv/logs/secure" {
		t.Errorf("env override not applied, got %s", cfg.Input.LogFile)
	}
	if cfg.Analysis.TopN != 3 {
		t.Errorf("env override not applied, got %d", cfg.Analysis.TopN)
	}
	if !cfg.Output.Verbose {
		t.Error("env override not applied for verbose")
	}
}

func TestEnvOverrideInvalidInt(t *testing.T) {
	t.Setenv("AUTHSUM_ANALYSIS_TOP_N", "lots")

	loader := NewLoader()
	loader.configPaths = []string{filepath.Join(t.TempDir(), "absent.yaml")}

	if _, err := loader.LoadConfig(""); err == nil {
		t.Error("expected error for non-integer env value")
	}
}
