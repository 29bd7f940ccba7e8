// internal/platform/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Batch.MaxIncrements != 10 {
		t.Errorf("MaxIncrements = %d, want 10", cfg.Batch.MaxIncrements)
	}
	if cfg.Batch.Delay != time.Second {
		t.Errorf("Delay = %v, want 1s", cfg.Batch.Delay)
	}
	if cfg.Batch.Concurrency != 1 {
		t.Errorf("Concurrency = %d, want 1", cfg.Batch.Concurrency)
	}
	if cfg.Prober != "gdocs" {
		t.Errorf("Prober = %q, want gdocs", cfg.Prober)
	}
	if len(cfg.KnownIDs) != 3 {
		t.Errorf("KnownIDs = %d, want 3", len(cfg.KnownIDs))
	}
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	cfg, err := Load([]string{
		"--base", "abc123",
		"--strategies", "last_digit,last_char",
		"--max-increments", "25",
		"--delay", "250ms",
		"--concurrency", "3",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseID != "abc123" {
		t.Errorf("BaseID = %q", cfg.BaseID)
	}
	if cfg.Strategies != "last_digit,last_char" {
		t.Errorf("Strategies = %q", cfg.Strategies)
	}
	if cfg.Batch.MaxIncrements != 25 {
		t.Errorf("MaxIncrements = %d", cfg.Batch.MaxIncrements)
	}
	if cfg.Batch.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v", cfg.Batch.Delay)
	}
	if cfg.Batch.Concurrency != 3 {
		t.Errorf("Concurrency = %d", cfg.Batch.Concurrency)
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("DOCSWEEP_BASE_ID", "envbase1")
	t.Setenv("DOCSWEEP_DELAY", "2s")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseID != "envbase1" {
		t.Errorf("BaseID = %q, want envbase1", cfg.BaseID)
	}
	if cfg.Batch.Delay != 2*time.Second {
		t.Errorf("Delay = %v, want 2s", cfg.Batch.Delay)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DOCSWEEP_BASE_ID", "envbase1")

	cfg, err := Load([]string{"--base", "flagbase1"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseID != "flagbase1" {
		t.Errorf("BaseID = %q, want flagbase1", cfg.BaseID)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docsweep.yaml")
	data := []byte(`
base_id: yamlbase1
strategies: last_letter
batch:
  max_increments: 7
  delay: 500ms
cache:
  enabled: false
known_ids:
  - onlyone
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseID != "yamlbase1" {
		t.Errorf("BaseID = %q", cfg.BaseID)
	}
	if cfg.Batch.MaxIncrements != 7 {
		t.Errorf("MaxIncrements = %d, want 7", cfg.Batch.MaxIncrements)
	}
	if cfg.Batch.Delay != 500*time.Millisecond {
		t.Errorf("Delay = %v, want 500ms", cfg.Batch.Delay)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true, want false")
	}
	if len(cfg.KnownIDs) != 1 || cfg.KnownIDs[0] != "onlyone" {
		t.Errorf("KnownIDs = %v", cfg.KnownIDs)
	}

	// Campos no presentes en el fichero conservan el default
	if cfg.Batch.Concurrency != 1 {
		t.Errorf("Concurrency = %d, want default 1", cfg.Batch.Concurrency)
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docsweep.yaml")
	if err := os.WriteFile(path, []byte("base_id: yamlbase1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"--config", path, "--base", "flagbase1"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseID != "flagbase1" {
		t.Errorf("BaseID = %q, want flagbase1", cfg.BaseID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load([]string{"--config", "/nonexistent/docsweep.yaml"}); err == nil {
		t.Error("Load() with missing file should error")
	}
}

func TestNormalize(t *testing.T) {
	cfg, err := Load([]string{"--base", "  AbC-1  ", "--concurrency", "0", "--timeout", "-5"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseID != "AbC-1" {
		t.Errorf("BaseID = %q, want trimmed AbC-1", cfg.BaseID)
	}
	if cfg.Batch.Concurrency != 1 {
		t.Errorf("Concurrency = %d, want clamped 1", cfg.Batch.Concurrency)
	}
	if cfg.Probe.TimeoutS != 0 {
		t.Errorf("TimeoutS = %d, want clamped 0", cfg.Probe.TimeoutS)
	}
}

func TestProbeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ProbeTimeout() != 30*time.Second {
		t.Errorf("ProbeTimeout() = %v, want 30s", cfg.ProbeTimeout())
	}
	cfg.Probe.TimeoutS = 0
	if cfg.ProbeTimeout() != 0 {
		t.Errorf("ProbeTimeout() = %v, want 0", cfg.ProbeTimeout())
	}
}
