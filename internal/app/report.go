package app

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/thushan/scout/internal/core/domain"
	"github.com/thushan/scout/pkg/format"
	"github.com/thushan/scout/theme"
)

// Marker strings are the stable contract of the report: they survive with
// colours stripped, so scripts can grep for them.
const (
	MarkerPass = "✓ PASS"
	MarkerFail = "✗ FAIL"
	MarkerSkip = "- SKIP"

	SummaryAllPassed = "all checks passed"
)

func (a *Application) printReport(report *domain.Report, elapsed time.Duration) {
	appTheme := a.logger.Theme

	fmt.Fprintln(a.out)
	for _, result := range report.Results {
		marker, markerColor := markerFor(result.Status, appTheme)

		header := pterm.Style{markerColor}.Sprint(marker) + " " +
			pterm.Style{appTheme.Endpoint}.Sprint(result.Name)
		if result.Status != domain.CheckSkipped {
			header += " " + appTheme.Muted.Sprint("(", format.Latency(result.Latency), ")")
		}
		fmt.Fprintln(a.out, header)

		for _, line := range result.Detail {
			fmt.Fprintf(a.out, "    %s\n", line)
		}
		if result.Error != nil {
			fmt.Fprintf(a.out, "    error: %v\n", result.Error)
		}
	}

	fmt.Fprintln(a.out)
	if report.Passed() {
		fmt.Fprintln(a.out, appTheme.Success.Sprint(SummaryAllPassed),
			appTheme.Muted.Sprint("(", format.Duration(elapsed), ")"))
	} else {
		fmt.Fprintln(a.out, appTheme.Error.Sprint(
			fmt.Sprintf("%s failed", format.Count(report.FailedCount(), "check"))))
	}
}

func markerFor(status domain.CheckStatus, appTheme *theme.Theme) (string, pterm.Color) {
	switch status {
	case domain.CheckPassed:
		return MarkerPass, appTheme.CheckPass
	case domain.CheckFailed:
		return MarkerFail, appTheme.CheckFail
	default:
		return MarkerSkip, appTheme.CheckSkip
	}
}
