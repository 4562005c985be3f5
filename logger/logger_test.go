package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoggerNeverNilBeforeInitialize(t *testing.T) {
	if Logger == nil {
		t.Fatal("Logger is nil before Initialize()")
	}
	// Must not panic
	Logger.Debugw("noop logger accepts calls", FieldCount, 0)
}

func TestInitializeConsole(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize(false) error: %v", err)
	}
	if JSONOutput {
		t.Error("JSONOutput = true after console initialization")
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Initialize")
	}
}

func TestInitializeJSON(t *testing.T) {
	if err := Initialize(true); err != nil {
		t.Fatalf("Initialize(true) error: %v", err)
	}
	if !JSONOutput {
		t.Error("JSONOutput = false after JSON initialization")
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestShouldLogTrace(t *testing.T) {
	if ShouldLogTrace(2) {
		t.Error("ShouldLogTrace(2) = true, want false")
	}
	if !ShouldLogTrace(3) {
		t.Error("ShouldLogTrace(3) = false, want true")
	}
}
