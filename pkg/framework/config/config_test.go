package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/justyntemme/lv2go/pkg/framework/debug"
)

const gainYAML = `
plugin:
  uri: https://example.com/plugins/gain
  id: com.example.gain
  name: Gain
  vendor: Example
  email: dev@example.com
  category: AmplifierPlugin
features:
  freewheel: false
validation: relaxed
log:
  level: warn
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(gainYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Plugin.Name != "Gain" || cfg.Plugin.Category != "AmplifierPlugin" {
		t.Errorf("Plugin = %+v", cfg.Plugin)
	}
	if cfg.Features.FreeWheel {
		t.Error("freewheel should be disabled")
	}
	if !cfg.Features.Latency {
		t.Error("latency should keep its default")
	}
	if !cfg.Relaxed() {
		t.Error("validation should be relaxed")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"BadYAML", "plugin: [unterminated"},
		{"BadValidation", "validation: lenient"},
		{"BadLevel", "log:\n  level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	t.Run("MustParsePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustParse should panic")
			}
		}()
		MustParse([]byte("validation: lenient"))
	})
}

func TestEmptyValidationDefaultsToStrict(t *testing.T) {
	cfg, err := Parse([]byte("validation: \"\""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Validation != ValidationStrict {
		t.Errorf("Validation = %q, want strict", cfg.Validation)
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("Missing file should yield defaults: %v", err)
	}
	if cfg.Validation != ValidationStrict {
		t.Errorf("Default validation = %q", cfg.Validation)
	}

	cfg.Plugin.ID = "com.example.saved"
	cfg.Plugin.Name = "Saved"
	path := filepath.Join(dir, "plugin.yaml")
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Plugin.Name != "Saved" || !loaded.Features.FreeWheel {
		t.Errorf("Loaded config = %+v", loaded)
	}

	if err := os.WriteFile(path, []byte("validation: nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Invalid file should fail to load")
	}
}

func TestApplyLogging(t *testing.T) {
	orig := debug.Default()
	origLevel := orig.Level()
	defer func() {
		debug.SetDefault(orig)
		orig.SetLevel(origLevel)
	}()

	cfg := DefaultConfig()
	cfg.Log.Level = "error"
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "plugin.log")

	if err := cfg.ApplyLogging(); err != nil {
		t.Fatalf("ApplyLogging failed: %v", err)
	}
	if debug.Default() == orig {
		t.Error("A log file should install a new default logger")
	}
	if debug.Default().Level() != debug.LogLevelError {
		t.Errorf("Level = %s, want ERROR", debug.Default().Level())
	}
	if _, err := os.Stat(cfg.Log.File); err != nil {
		t.Errorf("Log file not created: %v", err)
	}
}

func TestApplyLoggingProfile(t *testing.T) {
	defer debug.SetLevel(debug.Default().Level())
	defer debug.DisableProfiling()

	cfg := MustParse([]byte("log:\n  level: warn\n  profile: true\n"))
	if !cfg.Log.Profile {
		t.Fatal("profile flag not parsed")
	}
	if err := cfg.ApplyLogging(); err != nil {
		t.Fatalf("ApplyLogging failed: %v", err)
	}
	if !debug.DefaultProfiler.IsEnabled() {
		t.Error("profile: true should enable the default profiler")
	}

	cfg.Log.Profile = false
	if err := cfg.ApplyLogging(); err != nil {
		t.Fatalf("ApplyLogging failed: %v", err)
	}
	if debug.DefaultProfiler.IsEnabled() {
		t.Error("profile: false should disable the default profiler")
	}
}
