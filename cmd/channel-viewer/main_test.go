package main

import (
	"io"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnvInt(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	const name = "CHANNEL_VIEWER_TEST_INT"

	tests := []struct {
		value string
		want  int
	}{
		{"", 7},
		{"42", 42},
		{"0", 0},
		{"-3", 7},
		{"abc", 7},
	}

	for _, tt := range tests {
		t.Setenv(name, tt.value)
		if got := envInt(logger, name, 7); got != tt.want {
			t.Errorf("envInt(%q): got %d, want %d", tt.value, got, tt.want)
		}
	}
}
