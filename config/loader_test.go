package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return p
}

// chdir enters dir for the duration of the test; t.Chdir requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadAppliesDefaults(t *testing.T) {
	p := writeConfig(t, `
fetch:
  lines:
    url: "https://www.google.com/maps/preview/transit/linesdata?pb=abc"
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Fetch.CookieEnv != "GMAPS_COOKIE" {
		t.Errorf("CookieEnv = %q, want GMAPS_COOKIE", cfg.Fetch.CookieEnv)
	}
	if cfg.Fetch.Lines.Output != "transit_lines_response.json" {
		t.Errorf("Lines.Output = %q, want default", cfg.Fetch.Lines.Output)
	}
	if cfg.Fetch.Place.Output != "place_response.json" {
		t.Errorf("Place.Output = %q, want default", cfg.Fetch.Place.Output)
	}
	if !strings.Contains(cfg.Fetch.UserAgent, "Mozilla/5.0") {
		t.Errorf("UserAgent = %q, want browser default", cfg.Fetch.UserAgent)
	}
	if cfg.Fetch.Headers["accept-language"] == "" {
		t.Error("default headers not applied")
	}
	if cfg.Fetch.Lines.URL != "https://www.google.com/maps/preview/transit/linesdata?pb=abc" {
		t.Errorf("Lines.URL = %q", cfg.Fetch.Lines.URL)
	}
}

func TestLoadReadsExtractOverrides(t *testing.T) {
	p := writeConfig(t, `
extract:
  timezoneLiteral: "Europe/Berlin"
  minSequenceMatches: 3
  sequenceMatchDensity: 0.5
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Extract.TimezoneLiteral != "Europe/Berlin" {
		t.Errorf("TimezoneLiteral = %q", cfg.Extract.TimezoneLiteral)
	}
	if cfg.Extract.MinSequenceMatches != 3 {
		t.Errorf("MinSequenceMatches = %d, want 3", cfg.Extract.MinSequenceMatches)
	}
	if cfg.Extract.SequenceMatchDensity != 0.5 {
		t.Errorf("SequenceMatchDensity = %v, want 0.5", cfg.Extract.SequenceMatchDensity)
	}
	// Untouched fields stay zero for the extractor to default.
	if cfg.Extract.MinSequenceLen != 0 {
		t.Errorf("MinSequenceLen = %d, want 0", cfg.Extract.MinSequenceLen)
	}
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Load succeeded on a missing explicit path")
	}
}

func TestLoadMissingDefaultFileFallsBack(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed without a config file: %v", err)
	}
	if cfg.Fetch.CookieEnv != "GMAPS_COOKIE" {
		t.Errorf("fallback CookieEnv = %q", cfg.Fetch.CookieEnv)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	p := writeConfig(t, "fetch: [not: a: mapping")
	if _, err := Load(p); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestLoadValidatesURLs(t *testing.T) {
	p := writeConfig(t, `
fetch:
  place:
    url: "not a url"
`)
	if _, err := Load(p); err == nil {
		t.Error("Load accepted an invalid endpoint URL")
	}
}

func TestLoadValidatesDensityRange(t *testing.T) {
	p := writeConfig(t, `
extract:
  sequenceMatchDensity: 1.5
`)
	if _, err := Load(p); err == nil {
		t.Error("Load accepted a density above 1")
	}
}
