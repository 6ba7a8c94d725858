package zoomable

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinScale != 1 || cfg.MaxScale != 5 || cfg.DoubleTapScale != 3 {
		t.Errorf("scales = %v/%v/%v", cfg.MinScale, cfg.MaxScale, cfg.DoubleTapScale)
	}
	if cfg.MinPanPointers != 2 || cfg.MaxPanPointers != 2 {
		t.Errorf("pan pointers = %d..%d", cfg.MinPanPointers, cfg.MaxPanPointers)
	}
	if !cfg.IsPanEnabled || !cfg.IsPinchEnabled || cfg.IsSingleTapEnabled || cfg.IsDoubleTapEnabled {
		t.Errorf("enable flags = %+v", cfg)
	}
	if cfg.AnimationDuration != 300*time.Millisecond || cfg.Easing == nil {
		t.Error("animation defaults")
	}
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(Config) bool
	}{
		{"NaN min", Config{MinScale: math.NaN(), MaxScale: 4}, func(c Config) bool { return c.MinScale == DefaultMinScale }},
		{"Inf max", Config{MinScale: 1, MaxScale: math.Inf(1)}, func(c Config) bool { return c.MaxScale == DefaultMaxScale }},
		{"inverted range", Config{MinScale: 3, MaxScale: 2}, func(c Config) bool { return c.MaxScale == 3 }},
		{"zero pointers", Config{}, func(c Config) bool { return c.MinPanPointers == 1 && c.MaxPanPointers == 1 }},
		{"max below min pointers", Config{MinPanPointers: 3, MaxPanPointers: 1}, func(c Config) bool { return c.MaxPanPointers == 3 }},
		{"zero durations", Config{}, func(c Config) bool {
			return c.AnimationDuration == DefaultAnimationTime && c.DoubleTapWindow == DefaultDoubleTapDelay
		}},
		{"easing", Config{}, func(c Config) bool { return c.Easing != nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); !tt.check(got) {
				t.Errorf("Normalize() = %+v", got)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("maxScale: 4\nanimationDuration: 120ms\nisDoubleTapEnabled: true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxScale != 4 || cfg.AnimationDuration != 120*time.Millisecond || !cfg.IsDoubleTapEnabled {
		t.Errorf("parsed = %+v", cfg)
	}
	// Absent keys keep their defaults.
	if cfg.MinScale != DefaultMinScale || !cfg.IsPinchEnabled || cfg.Easing == nil {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("maxScale: [1, 2"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error should be wrapped, got: %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxScale != DefaultMaxScale {
		t.Errorf("MaxScale = %v", cfg.MaxScale)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom.yaml")
	if err := os.WriteFile(path, []byte("doubleTapScale: 2.5\ndoubleTapWindow: 400ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DoubleTapScale != 2.5 || cfg.DoubleTapWindow != 400*time.Millisecond {
		t.Errorf("loaded = %+v", cfg)
	}
}
