package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("got %+v, want defaults %+v", *cfg, defaultConfig())
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, defaultConfigFile), `
langs_dir = "langs"
reference = "german"
workers = 2
log_format = "json"
`)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LangsDir != "langs" || cfg.Reference != "german" || cfg.Workers != 2 || cfg.LogFormat != "json" {
		t.Errorf("file values not applied: %+v", *cfg)
	}
	if cfg.Extension != ".lng" {
		t.Errorf("Extension = %q, want default .lng", cfg.Extension)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "reference = \"german\"\nextension = \".ini\"\n")
	t.Setenv("LANGCHECK_REFERENCE", "french")
	t.Setenv("LANGCHECK_WORKERS", "8")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Reference != "french" {
		t.Errorf("Reference = %q, want french", cfg.Reference)
	}
	if cfg.Extension != ".ini" {
		t.Errorf("Extension = %q, want .ini", cfg.Extension)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, ".env"), "LANGCHECK_SOURCE_DIR=src\n")
	t.Cleanup(func() { os.Unsetenv("LANGCHECK_SOURCE_DIR") })

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SourceDir != "src" {
		t.Errorf("SourceDir = %q, want src", cfg.SourceDir)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "referense = \"german\"\n"},
		{"bad toml", "reference = \n"},
		{"bad extension", "extension = \"lng\"\n"},
		{"zero workers", "workers = 0\n"},
		{"bad log level", "log_level = \"loud\"\n"},
		{"bad log format", "log_format = \"xml\"\n"},
		{"empty reference", "reference = \"\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			path := filepath.Join(dir, "langcheck.toml")
			writeFile(t, path, tc.content)

			if _, err := loadConfig(path); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := loadConfig("nope.toml"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
