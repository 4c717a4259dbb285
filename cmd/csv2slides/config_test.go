package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfgFile = ""

	cmd := newRootCmd()
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.CSVInput != "data.csv" || cfg.Semantics != "semantics.xml" || cfg.Slides != "slides.xml" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SkipFramework {
		t.Errorf("expected framework fetch enabled by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfgFile = ""

	content := "csv_input: from-file.csv\nslides: from-file.xml\nskip-framework: true\n"
	if err := os.WriteFile(filepath.Join(dir, "csv2slides.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CSV2SLIDES_SLIDES", "from-env.xml")
	t.Setenv("CSV2SLIDES_LOG_LEVEL", "debug")

	cmd := newRootCmd()
	if err := cmd.Flags().Set("csv_raw", "public.csv"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"config file", cfg.CSVInput, "from-file.csv"},
		{"env over file", cfg.Slides, "from-env.xml"},
		{"flag", cfg.CSVRaw, "public.csv"},
		{"env with dashes", cfg.LogLevel, "debug"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: got %q, expected %q", tt.name, tt.got, tt.expected)
		}
	}
	if !cfg.SkipFramework {
		t.Errorf("expected skip-framework from config file")
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		if _, err := newLogger(level); err != nil {
			t.Errorf("newLogger(%q) failed: %v", level, err)
		}
	}
	if _, err := newLogger("verbose"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestSlidesFlagUsage(t *testing.T) {
	flag := newRootCmd().Flags().Lookup("slides")
	if flag == nil {
		t.Fatal("slides flag not registered")
	}
	if !strings.Contains(flag.Usage, "unknown elements are rejected") {
		t.Errorf("slides usage does not mention strict parsing: %q", flag.Usage)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
