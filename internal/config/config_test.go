package config

import (
	"testing"

	"github.com/vedantwpatil/Render-Quality/internal/quality"
)

func envFrom(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	if cfg.Quality.Preset != quality.High {
		t.Errorf("Preset = %q, want %q", cfg.Quality.Preset, quality.High)
	}
	if cfg.Quality.WorkFactor != nil || cfg.Quality.Dithering != nil || cfg.Quality.FrameRate != nil {
		t.Error("expected no overrides by default")
	}

	got, report := cfg.ResolveQuality()
	want, _ := quality.Lookup(quality.High)
	if got != want {
		t.Errorf("ResolveQuality() = %+v, want %+v", got, want)
	}
	if err := report.Err(); err != nil {
		t.Errorf("report.Err() = %v, want nil", err)
	}
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		input  string
		want   bool
		wantOK bool
	}{
		{"true", true, true},
		{"True", true, true},
		{"1", true, true},
		{"yes", true, true},
		{"on", true, true},
		{"false", false, true},
		{"0", false, true},
		{"no", false, true},
		{"OFF", false, true},
		{"  true  ", true, true},
		{"", false, false},
		{"junk", false, false},
	}

	for _, tc := range tests {
		got, ok := asBool(tc.input)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("asBool(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	cfg := NewConfig()
	cfg.LoadEnv(envFrom(map[string]string{
		EnvPreset:     " low ",
		EnvWorkFactor: "0.9",
		EnvDithering:  "on",
		EnvFPS:        "200",
		EnvSource:     "clip.mp4",
	}))

	if cfg.Quality.Preset != "low" {
		t.Errorf("Preset = %q, want %q", cfg.Quality.Preset, "low")
	}
	if cfg.Source.Path != "clip.mp4" {
		t.Errorf("Source.Path = %q, want %q", cfg.Source.Path, "clip.mp4")
	}

	got, report := cfg.ResolveQuality()
	want := quality.Config{WorkFactor: 0.9, EnableDithering: true, FrameRate: 60}
	if got != want {
		t.Errorf("ResolveQuality() = %+v, want %+v", got, want)
	}
	if len(report.Rejected) != 1 || report.Rejected[0].Value != "200" {
		t.Errorf("Rejected = %v, want the fps override", report.Rejected)
	}
}

func TestLoadEnv_Empty(t *testing.T) {
	cfg := NewConfig()
	cfg.LoadEnv(envFrom(map[string]string{EnvPreset: "  ", EnvDithering: "maybe"}))

	if cfg.Quality.Preset != quality.DefaultPreset {
		t.Errorf("Preset = %q, want default %q", cfg.Quality.Preset, quality.DefaultPreset)
	}
	if cfg.Quality.Dithering != nil {
		t.Errorf("Dithering = %v, want unset", *cfg.Quality.Dithering)
	}
	if cfg.Quality.WorkFactor != nil || cfg.Quality.FrameRate != nil {
		t.Error("expected numeric overrides to stay unset")
	}
}

func TestLoadEnv_DitheringFalseIsAnOverride(t *testing.T) {
	cfg := NewConfig()
	cfg.LoadEnv(envFrom(map[string]string{EnvPreset: quality.Ultra, EnvDithering: "false"}))

	got, _ := cfg.ResolveQuality()
	if got.EnableDithering {
		t.Error("EnableDithering = true, want explicit false to win over ultra preset")
	}
}
