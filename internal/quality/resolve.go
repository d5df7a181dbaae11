package quality

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrUnknownPreset is reported when a named preset is not in the table.
var ErrUnknownPreset = errors.New("unknown quality preset")

// Overrides holds optional raw values that may replace preset fields.
// A nil field means the override was not supplied.
type Overrides struct {
	WorkFactor *string
	Dithering  *bool
	FrameRate  *string
}

// OverrideError describes an override that was discarded.
type OverrideError struct {
	Field  string
	Value  string
	Reason string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("%s override %q ignored: %s", e.Field, e.Value, e.Reason)
}

// Report lists what Resolve silently dropped.
type Report struct {
	Requested string
	Preset    string // Preset actually used
	FellBack  bool   // A non-empty unknown name was replaced by DefaultPreset
	Rejected  []*OverrideError
}

// Err returns nil when nothing was dropped.
func (r Report) Err() error {
	var errs []error
	if r.FellBack {
		errs = append(errs, fmt.Errorf("%w: %q, using %q", ErrUnknownPreset, r.Requested, r.Preset))
	}
	for _, e := range r.Rejected {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Resolve merges the named preset with any valid overrides. It never fails:
// an empty or unknown preset selects DefaultPreset and invalid overrides
// leave the preset value in place.
func Resolve(preset string, o Overrides) Config {
	cfg, _ := ResolveReport(preset, o)
	return cfg
}

// ResolveReport is Resolve plus an account of every input it discarded.
func ResolveReport(preset string, o Overrides) (Config, Report) {
	report := Report{Requested: preset, Preset: preset}

	cfg, ok := Lookup(preset)
	if !ok {
		report.FellBack = preset != ""
		report.Preset = DefaultPreset
		cfg = presets[DefaultPreset]
	}

	if o.WorkFactor != nil {
		if f, ok := ParseWorkFactor(*o.WorkFactor); ok {
			cfg.WorkFactor = f
		} else {
			report.Rejected = append(report.Rejected, &OverrideError{
				Field:  "work factor",
				Value:  *o.WorkFactor,
				Reason: "want a number between 0 and 1",
			})
		}
	}

	if o.Dithering != nil {
		cfg.EnableDithering = *o.Dithering
	}

	if o.FrameRate != nil {
		if n, ok := ParseFrameRate(*o.FrameRate); ok {
			cfg.FrameRate = n
		} else {
			report.Rejected = append(report.Rejected, &OverrideError{
				Field:  "frame rate",
				Value:  *o.FrameRate,
				Reason: fmt.Sprintf("want an integer between 1 and %d", MaxFrameRate),
			})
		}
	}

	return cfg, report
}

// ParseWorkFactor reads the leading decimal number of s, ignoring any
// trailing text, and accepts it if it lies in [0, 1].
func ParseWorkFactor(s string) (float64, bool) {
	prefix := leadingFloat(s)
	if prefix == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || !validWorkFactor(f) {
		return 0, false
	}
	return f, true
}

// ParseFrameRate reads the leading base-10 integer of s, ignoring any
// trailing text, and accepts it if it lies in (0, 120]. "29.97" reads as 29.
func ParseFrameRate(s string) (int, bool) {
	prefix := leadingInt(s)
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || !validFrameRate(n) {
		return 0, false
	}
	return n, true
}

// leadingInt returns the optional sign and digits at the start of s after
// leading whitespace, or "" when there are no digits.
func leadingInt(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := skipSign(s, 0)
	end := skipDigits(s, i)
	if end == i {
		return ""
	}
	return s[:end]
}

// leadingFloat returns the longest decimal literal (sign, digits, fraction,
// exponent) at the start of s after leading whitespace, or "" when there is none.
func leadingFloat(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	start := skipSign(s, 0)
	i := skipDigits(s, start)
	digits := i - start
	if i < len(s) && s[i] == '.' {
		frac := skipDigits(s, i+1)
		digits += frac - (i + 1)
		if digits > 0 {
			i = frac
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		expStart := skipSign(s, i+1)
		if exp := skipDigits(s, expStart); exp > expStart {
			i = exp
		}
	}
	return s[:i]
}

func skipSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
