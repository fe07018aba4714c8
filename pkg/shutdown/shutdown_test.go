package shutdown

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestShutdownWithTimeout(t *testing.T) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	shutdown := NewShutdown(logger)

	quickCompleted := false
	slowCompleted := false
	timeoutOccurred := false

	shutdown.HookShutdownCallback("quick", func() {
		time.Sleep(50 * time.Millisecond)
		quickCompleted = true
	}, 1*time.Second)

	shutdown.HookShutdownCallback("slow", func() {
		time.Sleep(2 * time.Second) // This will timeout
		slowCompleted = true
	}, 100*time.Millisecond)

	shutdown.HookShutdownCallback("timeout-detector", func() {
		time.Sleep(200 * time.Millisecond)
		timeoutOccurred = true
	}, 50*time.Millisecond)

	shutdown.ShutdownNow()

	if !quickCompleted {
		t.Error("Quick callback should have completed")
	}

	if slowCompleted {
		t.Error("Slow callback should not have completed due to timeout")
	}

	if timeoutOccurred {
		t.Error("Timeout detector should not have completed due to timeout")
	}
}

func TestShutdownWithoutTimeout(t *testing.T) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	shutdown := NewShutdown(logger)

	completed := false

	shutdown.HookShutdownCallback("no-timeout", func() {
		time.Sleep(100 * time.Millisecond)
		completed = true
	}, 0) // No timeout

	shutdown.ShutdownNow()

	if !completed {
		t.Error("Callback without timeout should have completed")
	}
}
