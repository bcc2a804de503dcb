package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.K != DefaultK {
		t.Errorf("expected K=%v, got %v", DefaultK, cfg.K)
	}
	if cfg.Steps != DefaultSteps || cfg.Sims != DefaultSims {
		t.Errorf("unexpected defaults: steps=%d sims=%d", cfg.Steps, cfg.Sims)
	}
	if cfg.Sweep.KSteps == 0 || cfg.Sweep.Iters <= cfg.Sweep.BurnIn {
		t.Errorf("sweep defaults not usable: %+v", cfg.Sweep)
	}
	if cfg.Out.Dir == "" || cfg.Out.CSVDir == "" || cfg.Out.PlotDir == "" {
		t.Errorf("output dirs must be set: %+v", cfg.Out)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdmap.yaml")

	cfg := DefaultConfig()
	cfg.K = 2.5
	cfg.Steps = 1234
	cfg.Seed = 99
	cfg.Sweep.KMax = 8.0
	cfg.Out.Dir = "elsewhere"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("config changed across round trip (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	tests := []struct {
		name  string
		wantK float64
	}{
		{"regular", 0.5},
		{"critical", 0.971635},
		{"mixed", 1.5},
		{"chaotic", 2.5},
		{"strong", 6.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetPreset(tt.name)
			if cfg == nil {
				t.Fatalf("preset %q not found", tt.name)
			}
			if cfg.K != tt.wantK {
				t.Errorf("expected K=%v, got %v", tt.wantK, cfg.K)
			}
			if cfg.Sweep == (SweepConfig{}) || cfg.Out == (OutConfig{}) {
				t.Error("preset should backfill sweep and output defaults")
			}
		})
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if cfg := GetPreset("turbulent"); cfg != nil {
		t.Errorf("expected nil for unknown preset, got %+v", cfg)
	}
}

func TestGetPresetCopies(t *testing.T) {
	a := GetPreset("regular")
	a.K = 99
	if b := GetPreset("regular"); b.K != 0.5 {
		t.Errorf("preset map mutated through returned copy: K=%v", b.K)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if Presets[name] == nil {
			t.Errorf("listed unknown preset %q", name)
		}
	}
}
