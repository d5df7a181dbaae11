package quality

import (
	"fmt"
	"time"
)

// Preset names
const (
	Low    = "low"
	Medium = "medium"
	High   = "high"
	Ultra  = "ultra"

	// DefaultPreset is used when no preset or an unknown one is requested
	DefaultPreset = High
)

// Allowed ranges for Config fields
const (
	MinWorkFactor = 0.0
	MaxWorkFactor = 1.0
	MaxFrameRate  = 120
)

// Config is the effective rendering quality handed to the renderer.
type Config struct {
	WorkFactor          float64 // Relative effort, 0.0 to 1.0
	EnableDithering     bool
	EnablePreprocessing bool
	EnableOptimizations bool
	FrameRate           int // Target frames per second, 1 to 120
}

// Built once, never written to after init. Only copies leave the package.
var presets = map[string]Config{
	Low: {
		WorkFactor:          0.2,
		EnableDithering:     false,
		EnablePreprocessing: false,
		EnableOptimizations: false,
		FrameRate:           60,
	},
	Medium: {
		WorkFactor:          0.5,
		EnableDithering:     true,
		EnablePreprocessing: false,
		EnableOptimizations: true,
		FrameRate:           45,
	},
	High: {
		WorkFactor:          1.0,
		EnableDithering:     true,
		EnablePreprocessing: true,
		EnableOptimizations: true,
		FrameRate:           30,
	},
	Ultra: {
		WorkFactor:          1.0,
		EnableDithering:     true,
		EnablePreprocessing: true,
		EnableOptimizations: true,
		FrameRate:           24,
	},
}

// Lookup returns the preset with exactly the given name.
func Lookup(name string) (Config, bool) {
	cfg, ok := presets[name]
	return cfg, ok
}

// Names returns the preset names from cheapest to most expensive.
func Names() []string {
	return []string{Low, Medium, High, Ultra}
}

// Presets returns a copy of the preset table.
func Presets() map[string]Config {
	out := make(map[string]Config, len(presets))
	for name, cfg := range presets {
		out[name] = cfg
	}
	return out
}

// Valid reports whether every field is inside its allowed range.
func (c Config) Valid() bool {
	return validWorkFactor(c.WorkFactor) && validFrameRate(c.FrameRate)
}

// FrameTime returns the seconds per frame at the configured frame rate.
func (c Config) FrameTime() float64 {
	return FrameTime(float64(c.FrameRate))
}

// FrameDuration returns the interval between frames, suitable for a time.Ticker.
// The receiver must be Valid: a zero FrameRate panics with a division by zero.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func (c Config) String() string {
	return fmt.Sprintf("work=%.2f dither=%t preprocess=%t optimize=%t fps=%d",
		c.WorkFactor, c.EnableDithering, c.EnablePreprocessing, c.EnableOptimizations, c.FrameRate)
}

// FrameTime converts frames per second to seconds per frame.
// fps is not checked: zero yields +Inf.
func FrameTime(fps float64) float64 {
	return 1.0 / fps
}

func validWorkFactor(f float64) bool {
	return f >= MinWorkFactor && f <= MaxWorkFactor
}

func validFrameRate(n int) bool {
	return n > 0 && n <= MaxFrameRate
}
