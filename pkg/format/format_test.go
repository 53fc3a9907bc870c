package format

import (
	"testing"
	"time"
)

func TestLatency(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0ms"},
		{"sub-millisecond", 400 * time.Microsecond, "0ms"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"just under a second", 999 * time.Millisecond, "999ms"},
		{"seconds", 1500 * time.Millisecond, "1.5s"},
		{"long call", 12 * time.Second, "12.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Latency(tt.duration); got != tt.expected {
				t.Errorf("Latency(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"sub-second", 250 * time.Millisecond, "250ms"},
		{"seconds", 45 * time.Second, "45s"},
		{"minutes", 2*time.Minute + 3*time.Second, "2m3s"},
		{"hours", time.Hour + 30*time.Minute, "1h30m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.duration); got != tt.expected {
				t.Errorf("Duration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "model"); got != "1 model" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(3, "model"); got != "3 models" {
		t.Errorf("Count(3) = %q", got)
	}
	if got := Count(0, "check"); got != "0 checks" {
		t.Errorf("Count(0) = %q", got)
	}
}

func TestContextLength(t *testing.T) {
	if got := ContextLength(nil); got != "unknown" {
		t.Errorf("ContextLength(nil) = %q", got)
	}
	zero := int64(0)
	if got := ContextLength(&zero); got != "unknown" {
		t.Errorf("ContextLength(0) = %q", got)
	}
	length := int64(1048576)
	if got := ContextLength(&length); got != "1048576" {
		t.Errorf("ContextLength = %q", got)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens(37, 68, 105)
	if got != "prompt=37 completion=68 total=105" {
		t.Errorf("Tokens = %q", got)
	}
}
