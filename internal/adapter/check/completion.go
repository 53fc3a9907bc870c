package check

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thushan/scout/internal/adapter/openai"
	"github.com/thushan/scout/internal/config"
	"github.com/thushan/scout/internal/core/domain"
	"github.com/thushan/scout/internal/logger"
	"github.com/thushan/scout/pkg/format"
)

// maxContentDetail caps how much of the assistant reply lands in the
// report, full responses still go to the debug log
const maxContentDetail = 300

// CompletionCheck sends one fixed chat message to the configured model and
// verifies a usable completion comes back
type CompletionCheck struct {
	cfg    *config.Config
	logger *logger.StyledLogger
}

func NewCompletionCheck(cfg *config.Config, styledLogger *logger.StyledLogger) *CompletionCheck {
	return &CompletionCheck{
		cfg:    cfg,
		logger: styledLogger,
	}
}

func (c *CompletionCheck) Name() string {
	return CompletionCheckName
}

func (c *CompletionCheck) Run(ctx context.Context) domain.CheckResult {
	start := time.Now()

	c.logger.InfoWithEndpoint("Requesting completion from", c.cfg.Completion.Model)

	client := openai.NewClient(c.cfg.Endpoint.BaseURL(), c.cfg.Endpoint.APIKey, c.cfg.Endpoint.Timeout)
	completion, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Completion.Model,
		Messages: []openai.ChatMessage{
			{Role: "user", Content: c.cfg.Completion.Prompt},
		},
		MaxTokens:   c.cfg.Completion.MaxTokens,
		Temperature: c.cfg.Completion.Temperature,
		Stream:      false,
	})
	latency := time.Since(start)

	if err != nil {
		c.logger.Debug("Completion request failed", "error", err, "error_type", openai.Classify(err))
		return domain.CheckResult{
			Name:    CompletionCheckName,
			Status:  domain.CheckFailed,
			Latency: latency,
			Error:   err,
			Detail:  []string{fmt.Sprintf("error_type: %s", openai.Classify(err))},
		}
	}

	c.logger.Debug("Completion response", "model", completion.Model, "content", completion.Content)

	return domain.CheckResult{
		Name:    CompletionCheckName,
		Status:  domain.CheckPassed,
		Latency: latency,
		Detail: []string{
			fmt.Sprintf("model: %s", completion.Model),
			fmt.Sprintf("response: %s", truncateContent(completion.Content)),
			fmt.Sprintf("usage: %s", format.Tokens(
				completion.Usage.PromptTokens,
				completion.Usage.CompletionTokens,
				completion.Usage.TotalTokens)),
		},
	}
}

func truncateContent(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= maxContentDetail {
		return content
	}
	return string(runes[:maxContentDetail]) + "…"
}
