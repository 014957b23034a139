// ABOUTME: Tests for config loading, merging, and environment overrides
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/iterm2-go/pkg/iterm2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestMerge(t *testing.T) {
	t.Parallel()

	yes := true
	limit := 100
	base := &Settings{Width: "50%", MaxPixels: &limit}
	override := &Settings{Height: "3", PreserveAspectRatio: &yes}

	result := merge(base, override)

	if result.Width != "50%" {
		t.Errorf("Width = %q, want %q", result.Width, "50%")
	}
	if result.Height != "3" {
		t.Errorf("Height = %q, want %q", result.Height, "3")
	}
	if result.PreserveAspectRatio == nil || !*result.PreserveAspectRatio {
		t.Error("expected PreserveAspectRatio=true from override")
	}
	if result.MaxPixelLimit() != 100 {
		t.Errorf("MaxPixelLimit() = %d, want 100", result.MaxPixelLimit())
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
	if result.MaxPixelLimit() != DefaultMaxPixels {
		t.Errorf("MaxPixelLimit() = %d, want default %d", result.MaxPixelLimit(), DefaultMaxPixels)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "width: 100%\nheight: 1px\npreserve_aspect_ratio: false\nmax_pixels: 2048\nverbose: true\n")
	s, err := loadFile(path)
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if s.Width != "100%" || s.Height != "1px" {
		t.Errorf("unexpected dimensions %q x %q", s.Width, s.Height)
	}
	if s.PreserveAspectRatio == nil || *s.PreserveAspectRatio {
		t.Error("expected PreserveAspectRatio=false")
	}
	if s.MaxPixels == nil || *s.MaxPixels != 2048 || !s.Verbose {
		t.Errorf("unexpected MaxPixels=%v Verbose=%v", s.MaxPixels, s.Verbose)
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	_, err := loadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "width: [unterminated\n")
	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_ExplicitMissingFails(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for explicitly named missing config")
	}
}

func TestLoad_InvalidDimension(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "width: 150%\n")
	_, err := Load(path)
	if !errors.Is(err, iterm2.ErrPercentOutOfRange) {
		t.Errorf("expected ErrPercentOutOfRange, got %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "width: \"10\"\nmax_pixels: 512\n")
	t.Setenv("ITERM2_WIDTH", "20px")
	t.Setenv("ITERM2_PRESERVE_ASPECT_RATIO", "true")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Width != "20px" {
		t.Errorf("Width = %q, want env override 20px", s.Width)
	}
	if s.MaxPixelLimit() != 512 {
		t.Errorf("MaxPixelLimit() = %d, want 512 from file", s.MaxPixelLimit())
	}
	if s.PreserveAspectRatio == nil || !*s.PreserveAspectRatio {
		t.Error("expected PreserveAspectRatio=true from env")
	}
}

func TestLoad_ExpandsVars(t *testing.T) {
	path := writeConfig(t, "height: ${IMG_HEIGHT}\n")
	t.Setenv("IMG_HEIGHT", "40%")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d, ok := s.HeightDimension()
	if !ok || d != iterm2.Percent(40) {
		t.Errorf("HeightDimension() = %v, %v; want 40%%, true", d, ok)
	}
}

func TestApplyEnv_BadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key, value string
	}{
		{"ITERM2_PRESERVE_ASPECT_RATIO", "maybe"},
		{"ITERM2_MAX_PIXELS", "lots"},
		{"ITERM2_VERBOSE", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.value, true
				}
				return "", false
			}
			err := applyEnv(Defaults(), lookup)
			if err == nil || !strings.Contains(err.Error(), tt.key) {
				t.Errorf("expected error naming %s, got %v", tt.key, err)
			}
		})
	}
}

func TestApplyEnv_None(t *testing.T) {
	t.Parallel()

	s := Defaults()
	if err := applyEnv(s, noEnv); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if s.Width != "" || s.Height != "" || s.PreserveAspectRatio != nil || s.Verbose {
		t.Errorf("expected defaults unchanged, got %+v", s)
	}
	if s.MaxPixelLimit() != DefaultMaxPixels {
		t.Errorf("MaxPixelLimit() = %d, want %d", s.MaxPixelLimit(), DefaultMaxPixels)
	}
}

func TestSettings_DimensionAccessors(t *testing.T) {
	t.Parallel()

	s := &Settings{Width: "auto"}
	if d, ok := s.WidthDimension(); !ok || d != iterm2.Auto {
		t.Errorf("WidthDimension() = %v, %v; want auto, true", d, ok)
	}
	if _, ok := s.HeightDimension(); ok {
		t.Error("expected unset height")
	}
}

func TestValidate_NegativeMaxPixels(t *testing.T) {
	t.Parallel()

	limit := -1
	if err := (&Settings{MaxPixels: &limit}).Validate(); err == nil {
		t.Error("expected error for negative max_pixels")
	}
}

func TestLoad_MaxPixelsZeroDisables(t *testing.T) {
	path := writeConfig(t, "max_pixels: 0\n")
	t.Setenv("ITERM2_MAX_PIXELS", "")
	os.Unsetenv("ITERM2_MAX_PIXELS")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MaxPixelLimit() != 0 {
		t.Errorf("MaxPixelLimit() = %d, want 0 from file", s.MaxPixelLimit())
	}
}

func TestLoad_MaxPixelsUnsetKeepsDefault(t *testing.T) {
	path := writeConfig(t, "width: auto\n")
	t.Setenv("ITERM2_MAX_PIXELS", "")
	os.Unsetenv("ITERM2_MAX_PIXELS")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MaxPixelLimit() != DefaultMaxPixels {
		t.Errorf("MaxPixelLimit() = %d, want default %d", s.MaxPixelLimit(), DefaultMaxPixels)
	}
}
