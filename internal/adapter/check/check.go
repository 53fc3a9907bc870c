// Package check implements the individual smoke checks run against an
// inference endpoint. Each check is self-contained: it builds its own
// client, makes exactly one network call and reduces the outcome to a
// CheckResult. Checks never retry.
package check

import (
	"context"

	"github.com/thushan/scout/internal/core/domain"
)

const (
	AvailabilityCheckName = "availability"
	CompletionCheckName   = "completion"
)

// Check is a single smoke check against the endpoint
type Check interface {
	Name() string
	Run(ctx context.Context) domain.CheckResult
}

// Skipped produces the result recorded for a check that never ran because
// a prerequisite check already failed
func Skipped(name string) domain.CheckResult {
	return domain.CheckResult{
		Name:   name,
		Status: domain.CheckSkipped,
		Detail: []string{"skipped: prerequisite check failed"},
	}
}
