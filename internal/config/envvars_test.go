// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import (
	"testing"
)

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_WIDTH", "80")
	result := expandEnv("${TEST_WIDTH}")
	if result != "80" {
		t.Errorf("expandEnv = %q; want %q", result, "80")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	result := expandEnv("${DEFINITELY_NOT_SET_12345}")
	if result != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", result)
	}
}

func TestExpandEnv_Mixed(t *testing.T) {
	t.Setenv("TEST_CELLS", "12")
	result := expandEnv("${TEST_CELLS}px")
	if result != "12px" {
		t.Errorf("expandEnv = %q; want %q", result, "12px")
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	result := expandEnv("auto")
	if result != "auto" {
		t.Errorf("expandEnv = %q; want %q", result, "auto")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("TEST_W", "50%")
	s := &Settings{Width: "${TEST_W}", Height: "3"}
	ResolveEnvVars(s)
	if s.Width != "50%" || s.Height != "3" {
		t.Errorf("ResolveEnvVars produced %q x %q", s.Width, s.Height)
	}
}
