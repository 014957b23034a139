// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and output redirection

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// capture redirects output for the duration of a test. Tests using it
// mutate package state and must not run in parallel.
func capture(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := GetLevel()
	SetLevel(l)
	t.Cleanup(func() {
		SetOutput(prevOut)
		SetLevel(prevLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtWarnLevel(t *testing.T) {
	buf := capture(t, LevelWarn)

	Debug("hidden %s", "debug")
	Info("hidden %s", "info")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestAllLevelsAtDebug(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	got := buf.String()
	for _, want := range []string{
		"iterm2: [DEBUG] debug: 1\n",
		"iterm2: [INFO] info: 2\n",
		"iterm2: [WARN] warn: 3\n",
		"iterm2: [ERROR] error: 4\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output %q", want, got)
		}
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, slog.Level(100))

	Warn("suppressed")
	Error("boom")
	if got := buf.String(); got != "iterm2: [ERROR] boom\n" {
		t.Errorf("unexpected output %q", got)
	}
}
