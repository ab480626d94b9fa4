package config

import (
	"os"
	"path/filepath"
	"testing"

	"pbxsort/internal/pbxproj"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CaseInsensitive {
			t.Error("CaseInsensitive should default to false")
		}
		if !cfg.ContinueOnError {
			t.Error("ContinueOnError should default to true")
		}
		if cfg.Logging.Format != "human" || cfg.Logging.Level != "info" {
			t.Errorf("logging defaults = %+v", cfg.Logging)
		}
	})

	t.Run("reads config file", func(t *testing.T) {
		dir := t.TempDir()
		content := `{
  "version": 1,
  "caseInsensitive": true,
  "continueOnError": false,
  "knownFiles": ["Makefile.shared"],
  "sortableSections": ["XCRemoteSwiftPackageReference"]
}`
		if err := os.WriteFile(filepath.Join(dir, ".pbxsort.json"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(dir)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.CaseInsensitive {
			t.Error("CaseInsensitive not read")
		}
		if cfg.ContinueOnError {
			t.Error("ContinueOnError not read")
		}
		if len(cfg.KnownFiles) != 1 || cfg.KnownFiles[0] != "Makefile.shared" {
			t.Errorf("KnownFiles = %v", cfg.KnownFiles)
		}
	})

	t.Run("invalid json errors", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".pbxsort.json"), []byte("{nope"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(dir); err == nil {
			t.Error("LoadConfig() expected error for malformed config")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("rejects protected section", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SortableSections = []string{pbxproj.ProtectedSection}
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject sorting the protected section")
		}
	})

	t.Run("rejects unknown version", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Version = 2
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject unsupported version")
		}
	})
}

func TestEffectiveAllowLists(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KnownFiles = []string{"Makefile.shared", "create_hash_table"}
	cfg.SortableSections = []string{"XCBuildConfiguration"}

	known := cfg.EffectiveKnownFiles()
	if len(known) != 2 {
		t.Errorf("EffectiveKnownFiles() = %v, want built-in plus one unique extra", known)
	}
	if known[0] != "create_hash_table" {
		t.Errorf("built-in entry must stay first, got %v", known)
	}

	sections := cfg.EffectiveSortableSections()
	want := map[string]bool{"PBXBuildFile": true, "PBXFileReference": true, "XCBuildConfiguration": true}
	if len(sections) != len(want) {
		t.Errorf("EffectiveSortableSections() = %v", sections)
	}
	for _, s := range sections {
		if !want[s] {
			t.Errorf("unexpected section kind %q", s)
		}
	}
}
