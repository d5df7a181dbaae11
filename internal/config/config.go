package config

import (
	"strings"

	"github.com/vedantwpatil/Render-Quality/internal/quality"
)

// Environment variables read by LoadEnv
const (
	EnvPreset     = "QUALITY_PRESET"
	EnvWorkFactor = "QUALITY_WORK_FACTOR"
	EnvDithering  = "QUALITY_DITHERING"
	EnvFPS        = "QUALITY_FPS"
	EnvSource     = "QUALITY_SOURCE"
)

// Config holds the quality selection exactly as the user supplied it.
// Override values stay raw; validation happens in quality.Resolve.
type Config struct {
	Quality struct {
		Preset     string
		WorkFactor *string
		Dithering  *bool
		FrameRate  *string
	}
	Source struct {
		Path string // Optional video whose native frame rate becomes the fps override
	}
}

func NewConfig() *Config {
	cfg := &Config{}
	cfg.Quality.Preset = quality.DefaultPreset
	return cfg
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadEnv fills values from the environment. A dithering value that is
// not a recognised boolean is treated as not supplied.
func (c *Config) LoadEnv(lookup LookupFunc) {
	if v, ok := lookup(EnvPreset); ok && strings.TrimSpace(v) != "" {
		c.Quality.Preset = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvWorkFactor); ok {
		c.Quality.WorkFactor = &v
	}
	if v, ok := lookup(EnvDithering); ok {
		if b, ok := asBool(v); ok {
			c.Quality.Dithering = &b
		}
	}
	if v, ok := lookup(EnvFPS); ok {
		c.Quality.FrameRate = &v
	}
	if v, ok := lookup(EnvSource); ok {
		c.Source.Path = strings.TrimSpace(v)
	}
}

// Overrides converts the raw selection into resolver input.
func (c *Config) Overrides() quality.Overrides {
	return quality.Overrides{
		WorkFactor: c.Quality.WorkFactor,
		Dithering:  c.Quality.Dithering,
		FrameRate:  c.Quality.FrameRate,
	}
}

// ResolveQuality returns the effective quality and what was discarded on the way.
func (c *Config) ResolveQuality() (quality.Config, quality.Report) {
	return quality.ResolveReport(c.Quality.Preset, c.Overrides())
}

func asBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
