package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/algoviz/internal/graph"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Speed.Std() != DefaultSpeed {
		t.Errorf("expected speed %v, got %v", DefaultSpeed, cfg.Speed.Std())
	}
	if cfg.Target == nil || *cfg.Target != DefaultTarget {
		t.Error("expected default target")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValues_Seeded(t *testing.T) {
	cfg := DefaultConfig()
	a, b := cfg.Values(), cfg.Values()
	if len(a) != DefaultSize {
		t.Fatalf("expected %d values, got %d", DefaultSize, len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different arrays at %d", i)
		}
		if a[i] < DefaultMinValue || a[i] > DefaultMaxValue {
			t.Errorf("value %v out of range", a[i])
		}
	}

	cfg.Array = []float64{3, 1, 2}
	got := cfg.Values()
	got[0] = 99
	if cfg.Array[0] != 3 {
		t.Error("Values should return a copy of the configured array")
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"run.yaml", "run.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := DefaultConfig()
			cfg.Algorithm = "dijkstra"
			cfg.Start, cfg.End = "B", "E"
			cfg.Speed = Duration(100 * time.Millisecond)
			cfg.Weights = []WeightOverride{{From: "A", To: "B", Weight: 1.5}}

			if err := Save(path, cfg); err != nil {
				t.Fatal(err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Algorithm != "dijkstra" || loaded.Start != "B" || loaded.End != "E" {
				t.Errorf("unexpected selection %+v", loaded)
			}
			if loaded.Speed.Std() != 100*time.Millisecond {
				t.Errorf("expected 100ms, got %v", loaded.Speed.Std())
			}
			if len(loaded.Weights) != 1 || loaded.Weights[0].Weight != 1.5 {
				t.Errorf("weights not preserved: %+v", loaded.Weights)
			}
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("algorithm: quick\narray: [3, 1, 2]\nspeed: 1s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Algorithm != "quick" || len(cfg.Array) != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Speed.Std() != time.Second {
		t.Errorf("expected 1s, got %v", cfg.Speed.Std())
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("speed = \"fast\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for bad speed")
	}
}

func TestRequest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = "dijkstra"
	cfg.Start, cfg.End = "b", "5"
	cfg.Weights = []WeightOverride{{From: "E", To: "F", Weight: 7}}

	req, err := cfg.Request()
	if err != nil {
		t.Fatal(err)
	}
	if req.Start != 1 || req.End != 5 {
		t.Errorf("expected start 1 end 5, got %d %d", req.Start, req.End)
	}
	if req.Graph == nil {
		t.Fatal("expected graph")
	}
	for _, e := range req.Graph.Edges {
		if e.Connects(4, 5) && e.Weight != 7 {
			t.Errorf("expected override weight 7, got %v", e.Weight)
		}
	}
	if req.Target == cfg.Target {
		t.Error("target should be copied")
	}
}

func TestRequest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no algorithm", func(c *Config) { c.Algorithm = "" }, ErrInvalidConfig},
		{"unknown start", func(c *Config) { c.Start = "Z" }, graph.ErrNodeNotFound},
		{"start out of range", func(c *Config) { c.Start = "9" }, graph.ErrNodeNotFound},
		{"missing edge", func(c *Config) { c.Weights = []WeightOverride{{From: "A", To: "F", Weight: 1}} }, graph.ErrEdgeNotFound},
		{"negative size", func(c *Config) { c.Size = -1 }, ErrInvalidConfig},
		{"size too large", func(c *Config) { c.Size = 1_000_000 }, ErrInvalidConfig},
		{"array too large", func(c *Config) { c.Array = make([]float64, MaxSize+1) }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if _, err := cfg.Request(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestRequest_MaxSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = MaxSize
	req, err := cfg.Request()
	if err != nil {
		t.Fatalf("size %d should be accepted: %v", MaxSize, err)
	}
	if len(req.Values) != MaxSize {
		t.Errorf("expected %d values, got %d", MaxSize, len(req.Values))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("binary", "missing")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Target == nil || *cfg.Target != 40 {
		t.Errorf("expected target 40, got %v", cfg.Target)
	}
	if cfg.Speed.Std() != DefaultSpeed {
		t.Error("preset should inherit default speed")
	}

	cfg.Array[0] = -1
	if Presets["binary"]["missing"].Array[0] == -1 {
		t.Error("preset should be copied")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bubble", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "reversed") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("bubble")
	if len(presets) != 3 || presets[0] != "reversed" {
		t.Errorf("unexpected bubble presets %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestPresets_AllResolve(t *testing.T) {
	for alg, presets := range Presets {
		for name := range presets {
			cfg := GetPreset(alg, name)
			if _, err := cfg.Request(); err != nil {
				t.Errorf("%s/%s: %v", alg, name, err)
			}
		}
	}
}
