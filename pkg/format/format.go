package format

import (
	"fmt"
	"time"
)

const (
	zeroLatency = "0ms"
	unknownText = "unknown"
)

// Latency formats a duration for per-check report lines, millisecond
// granularity below a second and one decimal of seconds above.
func Latency(d time.Duration) string {
	ms := d.Milliseconds()
	if ms == 0 {
		return zeroLatency
	}
	if ms >= 1000 {
		return fmt.Sprintf("%.1fs", float64(ms)/1000.0)
	}
	return fmt.Sprintf("%dms", ms)
}

// Duration formats duration in a readable way
func Duration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// Count renders a count with its noun, pluralising the simple way
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ContextLength renders a model's maximum context length, which vLLM
// reports but plain OpenAI listings omit
func ContextLength(length *int64) string {
	if length == nil || *length <= 0 {
		return unknownText
	}
	return fmt.Sprintf("%d", *length)
}

// Tokens renders prompt/completion/total usage on one line
func Tokens(prompt, completion, total int64) string {
	return fmt.Sprintf("prompt=%d completion=%d total=%d", prompt, completion, total)
}
