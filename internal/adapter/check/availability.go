package check

import (
	"context"
	"fmt"
	"time"

	"github.com/thushan/scout/internal/adapter/openai"
	"github.com/thushan/scout/internal/config"
	"github.com/thushan/scout/internal/core/domain"
	"github.com/thushan/scout/internal/logger"
	"github.com/thushan/scout/pkg/format"
)

// AvailabilityCheck verifies the endpoint is reachable and answers a model
// listing, reporting each advertised model's identifier, context length
// and owner
type AvailabilityCheck struct {
	cfg    *config.Config
	logger *logger.StyledLogger
}

func NewAvailabilityCheck(cfg *config.Config, styledLogger *logger.StyledLogger) *AvailabilityCheck {
	return &AvailabilityCheck{
		cfg:    cfg,
		logger: styledLogger,
	}
}

func (c *AvailabilityCheck) Name() string {
	return AvailabilityCheckName
}

func (c *AvailabilityCheck) Run(ctx context.Context) domain.CheckResult {
	start := time.Now()

	c.logger.InfoWithEndpoint("Checking availability of", c.cfg.Endpoint.BaseURL())

	client := openai.NewClient(c.cfg.Endpoint.BaseURL(), c.cfg.Endpoint.APIKey, c.cfg.Endpoint.Timeout)
	models, err := client.ListModels(ctx)
	latency := time.Since(start)

	if err != nil {
		c.logger.Debug("Model listing failed", "error", err, "error_type", openai.Classify(err))
		return domain.CheckResult{
			Name:    AvailabilityCheckName,
			Status:  domain.CheckFailed,
			Latency: latency,
			Error:   err,
			Detail:  []string{fmt.Sprintf("error_type: %s", openai.Classify(err))},
		}
	}

	detail := make([]string, 0, len(models)+1)
	detail = append(detail, fmt.Sprintf("found %s", format.Count(len(models), "model")))
	for _, model := range models {
		owner := model.OwnedBy
		if owner == "" {
			owner = "unknown"
		}
		detail = append(detail, fmt.Sprintf("%s (max context: %s, owner: %s)",
			model.ID, format.ContextLength(model.MaxContextLength), owner))
	}

	return domain.CheckResult{
		Name:    AvailabilityCheckName,
		Status:  domain.CheckPassed,
		Latency: latency,
		Detail:  detail,
	}
}
