package app

import (
	"context"
	"io"
	"time"

	"github.com/thushan/scout/internal/adapter/check"
	"github.com/thushan/scout/internal/config"
	"github.com/thushan/scout/internal/core/domain"
	"github.com/thushan/scout/internal/logger"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Application runs the smoke check sequence against the configured endpoint
type Application struct {
	cfg    *config.Config
	logger *logger.StyledLogger
	out    io.Writer
}

// New creates a new application instance writing its report to out
func New(cfg *config.Config, styledLogger *logger.StyledLogger, out io.Writer) *Application {
	return &Application{
		cfg:    cfg,
		logger: styledLogger,
		out:    out,
	}
}

// Run executes the checks and returns the process exit code: ExitSuccess
// only when every check passed
func (a *Application) Run(ctx context.Context) int {
	startTime := time.Now()

	a.logger.InfoWithEndpoint("Starting smoke checks for", a.cfg.Endpoint.BaseURL(),
		"model", a.cfg.Completion.Model)

	report := a.runChecks(ctx)
	a.printReport(report, time.Since(startTime))

	if report.Passed() {
		return ExitSuccess
	}
	return ExitFailure
}

// runChecks performs the two checks strictly in sequence. The completion
// check only runs when availability passed, so a dead endpoint costs one
// network call, a live one exactly two.
func (a *Application) runChecks(ctx context.Context) *domain.Report {
	report := &domain.Report{}

	availability := check.NewAvailabilityCheck(a.cfg, a.logger)
	availabilityResult := availability.Run(ctx)
	report.Add(availabilityResult)
	a.logger.InfoCheckStatus("Check", availability.Name(), availabilityResult.Status)

	if !availabilityResult.Passed() {
		report.Add(check.Skipped(check.CompletionCheckName))
		return report
	}

	completion := check.NewCompletionCheck(a.cfg, a.logger)
	completionResult := completion.Run(ctx)
	report.Add(completionResult)
	a.logger.InfoCheckStatus("Check", completion.Name(), completionResult.Status)

	return report
}
