// ABOUTME: CLI defaults loaded from a YAML file, then ITERM2_* environment overrides
// ABOUTME: Precedence: built-in defaults < config file < environment < command-line flags

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/iterm2-go/pkg/iterm2"
)

// DefaultMaxPixels is the largest image edge sent without downscaling.
const DefaultMaxPixels = 4096

// Settings holds CLI defaults for image display.
type Settings struct {
	Width               string `yaml:"width,omitempty"`
	Height              string `yaml:"height,omitempty"`
	PreserveAspectRatio *bool  `yaml:"preserve_aspect_ratio,omitempty"`
	MaxPixels           *int   `yaml:"max_pixels,omitempty"`
	Verbose             bool   `yaml:"verbose,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	n := DefaultMaxPixels
	return &Settings{MaxPixels: &n}
}

// Load reads settings from path, or from the XDG config location when
// path is empty. A missing file yields defaults. Environment overrides
// are applied last.
func Load(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	s := Defaults()
	if path != "" {
		file, err := loadFile(path)
		switch {
		case err == nil:
			s = merge(s, file)
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// no config file; keep defaults
		default:
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	ResolveEnvVars(s)
	if err := applyEnv(s, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile parses a YAML settings file.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays set values from override onto base.
func merge(base, override *Settings) *Settings {
	if base == nil {
		base = Defaults()
	}
	if override == nil {
		return base
	}

	result := *base
	if override.Width != "" {
		result.Width = override.Width
	}
	if override.Height != "" {
		result.Height = override.Height
	}
	if override.PreserveAspectRatio != nil {
		v := *override.PreserveAspectRatio
		result.PreserveAspectRatio = &v
	}
	if override.MaxPixels != nil {
		n := *override.MaxPixels
		result.MaxPixels = &n
	}
	if override.Verbose {
		result.Verbose = true
	}
	return &result
}

// applyEnv overrides settings from ITERM2_* variables.
func applyEnv(s *Settings, lookup func(string) (string, bool)) error {
	if v, ok := lookup("ITERM2_WIDTH"); ok {
		s.Width = v
	}
	if v, ok := lookup("ITERM2_HEIGHT"); ok {
		s.Height = v
	}
	if v, ok := lookup("ITERM2_PRESERVE_ASPECT_RATIO"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ITERM2_PRESERVE_ASPECT_RATIO: %w", err)
		}
		s.PreserveAspectRatio = &b
	}
	if v, ok := lookup("ITERM2_MAX_PIXELS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ITERM2_MAX_PIXELS: %w", err)
		}
		s.MaxPixels = &n
	}
	if v, ok := lookup("ITERM2_VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ITERM2_VERBOSE: %w", err)
		}
		s.Verbose = b
	}
	return nil
}

// Validate checks that the dimension fields parse.
func (s *Settings) Validate() error {
	if _, err := iterm2.ParseDimension(s.Width); err != nil {
		return fmt.Errorf("width: %w", err)
	}
	if _, err := iterm2.ParseDimension(s.Height); err != nil {
		return fmt.Errorf("height: %w", err)
	}
	if s.MaxPixels != nil && *s.MaxPixels < 0 {
		return fmt.Errorf("max_pixels must not be negative, got %d", *s.MaxPixels)
	}
	return nil
}

// MaxPixelLimit returns the downscaling threshold. 0 disables downscaling.
func (s *Settings) MaxPixelLimit() int {
	if s.MaxPixels == nil {
		return DefaultMaxPixels
	}
	return *s.MaxPixels
}

// WidthDimension returns the configured width, or false if unset.
func (s *Settings) WidthDimension() (iterm2.Dimension, bool) {
	return optionalDimension(s.Width)
}

// HeightDimension returns the configured height, or false if unset.
func (s *Settings) HeightDimension() (iterm2.Dimension, bool) {
	return optionalDimension(s.Height)
}

func optionalDimension(v string) (iterm2.Dimension, bool) {
	if v == "" {
		return iterm2.Auto, false
	}
	d, err := iterm2.ParseDimension(v)
	if err != nil {
		return iterm2.Auto, false
	}
	return d, true
}
