package telemetry

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	os.Unsetenv("LOG_LEVEL")
	logger := New("local")
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", logger.GetLevel())
	}
}

func TestNewHonorsLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := New("local")
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", logger.GetLevel())
	}
}

func TestNewFallsBackOnUnparsableLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "not-a-level")
	logger := New("local")
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected fallback to info level, got %v", logger.GetLevel())
	}
}
