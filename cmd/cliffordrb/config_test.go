package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseJSONConfigSuccess(t *testing.T) {
	path := writeTempConfig(t, `{"tables":"/data/tables","parallelism":4,"quiet":true,"minqubits":1,"maxqubits":3,"count":5,"onthefly":true}`)

	cfg := Config{Count: 10, Seed: 9}
	if err := parseJSONConfig(&cfg, path); err != nil {
		t.Fatalf("parseJSONConfig returned error: %v", err)
	}

	if cfg.TableDir != "/data/tables" || cfg.Parallelism != 4 || !cfg.Quiet {
		t.Fatalf("unexpected global fields: %+v", cfg)
	}
	if cfg.MinQubits != 1 || cfg.MaxQubits != 3 || cfg.Count != 5 || !cfg.OnTheFly {
		t.Fatalf("unexpected command fields: %+v", cfg)
	}
	// absent keys keep the flag values
	if cfg.Seed != 9 {
		t.Fatalf("seed overridden: %+v", cfg)
	}
}

func TestParseJSONConfigMissingFile(t *testing.T) {
	var cfg Config
	missing := filepath.Join(t.TempDir(), "missing.json")
	if err := parseJSONConfig(&cfg, missing); err == nil {
		t.Fatalf("parseJSONConfig expected error for missing file")
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
