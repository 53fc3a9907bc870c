package logger

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/thushan/scout/internal/core/domain"
	"github.com/thushan/scout/theme"
)

// StyledLogger wraps slog.Logger with Theme-aware formatting
type StyledLogger struct {
	logger *slog.Logger
	Theme  *theme.Theme
}

func NewStyledLogger(logger *slog.Logger, theme *theme.Theme) *StyledLogger {
	return &StyledLogger{
		logger: logger,
		Theme:  theme,
	}
}

func (sl *StyledLogger) Debug(msg string, args ...any) {
	sl.logger.Debug(msg, args...)
}

func (sl *StyledLogger) Info(msg string, args ...any) {
	sl.logger.Info(msg, args...)
}

func (sl *StyledLogger) Warn(msg string, args ...any) {
	sl.logger.Warn(msg, args...)
}

func (sl *StyledLogger) Error(msg string, args ...any) {
	sl.logger.Error(msg, args...)
}

func (sl *StyledLogger) InfoWithEndpoint(msg string, endpoint string, args ...any) {
	styledMsg := fmt.Sprintf("%s %s", msg, pterm.Style{sl.Theme.Endpoint}.Sprint(endpoint))
	sl.logger.Info(styledMsg, args...)
}

func (sl *StyledLogger) ErrorWithEndpoint(msg string, endpoint string, args ...any) {
	styledMsg := fmt.Sprintf("%s %s", msg, pterm.Style{sl.Theme.Endpoint}.Sprint(endpoint))
	sl.logger.Error(styledMsg, args...)
}

// InfoCheckStatus logs a check outcome with its status coloured by the theme
func (sl *StyledLogger) InfoCheckStatus(msg string, name string, status domain.CheckStatus, args ...any) {
	var statusColor pterm.Color
	var statusText string

	switch status {
	case domain.CheckPassed:
		statusColor = sl.Theme.CheckPass
		statusText = "passed"
	case domain.CheckFailed:
		statusColor = sl.Theme.CheckFail
		statusText = "failed"
	case domain.CheckSkipped:
		statusColor = sl.Theme.CheckSkip
		statusText = "skipped"
	default:
		statusColor = sl.Theme.CheckSkip
		statusText = "unknown"
	}

	styledMsg := fmt.Sprintf("%s %s %s", msg,
		pterm.Style{sl.Theme.Endpoint}.Sprint(name),
		pterm.Style{statusColor}.Sprint(statusText))
	sl.logger.Info(styledMsg, args...)
}

func (sl *StyledLogger) GetUnderlying() *slog.Logger {
	return sl.logger
}

func (sl *StyledLogger) With(args ...any) *StyledLogger {
	return &StyledLogger{
		logger: sl.logger.With(args...),
		Theme:  sl.Theme,
	}
}
