package gesture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// Default timing constants.
const (
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultGracePeriod       = 50 * time.Millisecond
	DefaultDoubleTapWindow   = 300 * time.Millisecond
)

// Config controls how gestures map onto the transform.
//
// The zero value is not the default; start from DefaultConfig.
type Config struct {
	// Rotate enables rotation solving. When false, two-contact gestures
	// produce uniform scale only.
	Rotate bool `yaml:"rotate"`

	// Pan is accepted for compatibility and currently has no effect:
	// translation is always applied.
	Pan bool `yaml:"pan"`

	// MinScale, when set, triggers an animated snap-back to identity once
	// both diagonal scale components fall to or below it.
	MinScale *float64 `yaml:"minScale,omitempty"`

	// MaxScale, when set, is a hard ceiling on both diagonal scale
	// components. It also enables double-tap-to-zoom-in.
	MaxScale *float64 `yaml:"maxScale,omitempty"`

	// Boundaries clamps translation so the content never reveals empty
	// space past its own edges.
	Boundaries bool `yaml:"boundaries"`

	AnimationDuration time.Duration `yaml:"animationDuration"`
	GracePeriod       time.Duration `yaml:"gracePeriod"`
	DoubleTapWindow   time.Duration `yaml:"doubleTapWindow"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Rotate:            true,
		AnimationDuration: DefaultAnimationDuration,
		GracePeriod:       DefaultGracePeriod,
		DoubleTapWindow:   DefaultDoubleTapWindow,
	}
}

// Scale returns a pointer to f, for filling MinScale and MaxScale.
func Scale(f float64) *float64 {
	return &f
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig describing every problem found.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v *float64) {
		if v == nil {
			return
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidConfig, name, *v))
		}
	}
	check("minScale", c.MinScale)
	check("maxScale", c.MaxScale)
	if c.MinScale != nil && c.MaxScale != nil && *c.MinScale > *c.MaxScale {
		errs = append(errs, fmt.Errorf("%w: minScale %v exceeds maxScale %v", ErrInvalidConfig, *c.MinScale, *c.MaxScale))
	}
	if c.AnimationDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: animationDuration must be positive, got %v", ErrInvalidConfig, c.AnimationDuration))
	}
	if c.GracePeriod < 0 {
		errs = append(errs, fmt.Errorf("%w: gracePeriod must not be negative, got %v", ErrInvalidConfig, c.GracePeriod))
	}
	if c.DoubleTapWindow <= 0 {
		errs = append(errs, fmt.Errorf("%w: doubleTapWindow must be positive, got %v", ErrInvalidConfig, c.DoubleTapWindow))
	}
	return errors.Join(errs...)
}

// LoadConfig decodes a YAML configuration on top of DefaultConfig and
// validates it. Keys missing from the document keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
