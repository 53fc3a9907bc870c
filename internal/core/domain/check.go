package domain

import "time"

type CheckStatus int

const (
	CheckUnknown CheckStatus = iota
	CheckPassed
	CheckFailed
	CheckSkipped
)

func (s CheckStatus) String() string {
	switch s {
	case CheckPassed:
		return "pass"
	case CheckFailed:
		return "fail"
	case CheckSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// CheckResult captures the outcome of a single smoke check against the endpoint
type CheckResult struct {
	Error   error
	Name    string
	Detail  []string
	Latency time.Duration
	Status  CheckStatus
}

func (r CheckResult) Passed() bool {
	return r.Status == CheckPassed
}

// Report is the combined outcome of a smoke run
type Report struct {
	Results []CheckResult
}

func (r *Report) Add(result CheckResult) {
	r.Results = append(r.Results, result)
}

// Passed reports whether every executed check passed. Skipped checks count
// as failures: a skipped check means a prerequisite already failed.
func (r *Report) Passed() bool {
	if len(r.Results) == 0 {
		return false
	}
	for _, result := range r.Results {
		if result.Status != CheckPassed {
			return false
		}
	}
	return true
}

func (r *Report) FailedCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Status != CheckPassed {
			count++
		}
	}
	return count
}
