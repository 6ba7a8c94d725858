package zoomable

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Default tunables used by DefaultConfig and by Normalize for invalid values.
const (
	DefaultMinScale       = 1.0
	DefaultMaxScale       = 5.0
	DefaultDoubleTapScale = 3.0
	DefaultPanPointers    = 2
	DefaultAnimationTime  = 300 * time.Millisecond
	DefaultDoubleTapDelay = 250 * time.Millisecond
)

// Config is the immutable set of tunables for one Zoomable. Rebuild the
// Zoomable (or call Reconfigure) after changing it.
type Config struct {
	MinScale       float64 `yaml:"minScale"`
	MaxScale       float64 `yaml:"maxScale"`
	DoubleTapScale float64 `yaml:"doubleTapScale"`
	MinPanPointers int     `yaml:"minPanPointers"`
	MaxPanPointers int     `yaml:"maxPanPointers"`

	IsPanEnabled       bool `yaml:"isPanEnabled"`
	IsPinchEnabled     bool `yaml:"isPinchEnabled"`
	IsSingleTapEnabled bool `yaml:"isSingleTapEnabled"`
	IsDoubleTapEnabled bool `yaml:"isDoubleTapEnabled"`

	// AnimationDuration is the length of every eased settle/zoom animation.
	AnimationDuration time.Duration `yaml:"animationDuration"`
	// DoubleTapWindow bounds both the press duration of each tap and the
	// delay between the two taps of a double tap.
	DoubleTapWindow time.Duration `yaml:"doubleTapWindow"`
	// Easing drives eased animations. Not read from YAML.
	Easing ease.TweenFunc `yaml:"-"`

	// Debug prints interaction diagnostics to stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		MinScale:          DefaultMinScale,
		MaxScale:          DefaultMaxScale,
		DoubleTapScale:    DefaultDoubleTapScale,
		MinPanPointers:    DefaultPanPointers,
		MaxPanPointers:    DefaultPanPointers,
		IsPanEnabled:      true,
		IsPinchEnabled:    true,
		AnimationDuration: DefaultAnimationTime,
		DoubleTapWindow:   DefaultDoubleTapDelay,
		Easing:            ease.OutQuad,
	}
}

// Normalize repairs values that would make the transform unrenderable:
// non-finite or non-positive scales fall back to defaults, an inverted scale
// range collapses to MinScale, and pointer counts are kept ordered and >= 1.
func (c Config) Normalize() Config {
	if !finite(c.MinScale) || c.MinScale <= 0 {
		c.MinScale = DefaultMinScale
	}
	if !finite(c.MaxScale) || c.MaxScale <= 0 {
		c.MaxScale = DefaultMaxScale
	}
	if c.MaxScale < c.MinScale {
		c.MaxScale = c.MinScale
	}
	if !finite(c.DoubleTapScale) || c.DoubleTapScale <= 0 {
		c.DoubleTapScale = DefaultDoubleTapScale
	}
	if c.MinPanPointers < 1 {
		c.MinPanPointers = 1
	}
	if c.MaxPanPointers < c.MinPanPointers {
		c.MaxPanPointers = c.MinPanPointers
	}
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = DefaultAnimationTime
	}
	if c.DoubleTapWindow <= 0 {
		c.DoubleTapWindow = DefaultDoubleTapDelay
	}
	if c.Easing == nil {
		c.Easing = ease.OutQuad
	}
	return c
}

// ParseConfig decodes YAML on top of DefaultConfig. Keys that are absent keep
// their default values. Durations use Go syntax ("300ms").
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.Normalize(), nil
}

// LoadConfig reads a YAML config file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
