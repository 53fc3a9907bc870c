package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/thushan/scout/internal/core/domain"
	"github.com/thushan/scout/internal/version"
)

const (
	DefaultTimeout     = 30 * time.Second
	MaxResponseSize    = 10 * 1024 * 1024 // 10MB limit for endpoint responses
	DefaultUserAgent   = "%s/%s"
	DefaultContentType = "application/json"

	modelsPath          = "/models"
	chatCompletionsPath = "/chat/completions"

	DefaultMaxIdleConnections        = 10
	DefaultIdleConnTimeout           = 60 * time.Second
	DefaultMaxIdleConnectionsPerHost = 5
)

// Client talks to a single OpenAI-compatible inference endpoint.
// Each check constructs its own Client, nothing is shared between calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        DefaultMaxIdleConnections,
				IdleConnTimeout:     DefaultIdleConnTimeout,
				MaxIdleConnsPerHost: DefaultMaxIdleConnectionsPerHost,
			},
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// ListModels fetches the endpoint's model listing
func (c *Client) ListModels(ctx context.Context) ([]*domain.ModelInfo, error) {
	listURL := c.baseURL + modelsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var response ModelListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	models := make([]*domain.ModelInfo, 0, len(response.Data))
	for _, model := range response.Data {
		if model.ID == "" {
			continue
		}
		models = append(models, toModelInfo(model))
	}

	return models, nil
}

// CreateChatCompletion issues one chat completion round-trip
func (c *Client) CreateChatCompletion(ctx context.Context, request ChatCompletionRequest) (*domain.Completion, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	completionURL := c.baseURL + chatCompletionsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", DefaultContentType)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var response ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if len(response.Choices) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("response contained no choices")}
	}

	return &domain.Completion{
		Model:   response.Model,
		Content: response.Choices[0].Message.Content,
		Usage: domain.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		},
	}, nil
}

// do executes the request and returns the size-limited response body,
// folding transport and status failures into the package error types
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: req.URL.String(), Err: err}
	}
	defer func(Body io.ReadCloser) {
		// dont care about errors here
		_ = Body.Close()
	}(resp.Body)

	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, &NetworkError{URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body),
		}
	}

	return body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", fmt.Sprintf(DefaultUserAgent, version.ShortName, version.Version))
	req.Header.Set("Accept", DefaultContentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// extractErrorMessage pulls a human message out of an error body without a
// full unmarshal. Servers disagree on shape, the common ones are
// {"error":{"message":...}}, {"error":"..."} and {"message":"..."}.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	if result := gjson.GetBytes(body, "error.message"); result.Type == gjson.String {
		return result.Str
	}
	if result := gjson.GetBytes(body, "error"); result.Type == gjson.String {
		return result.Str
	}
	if result := gjson.GetBytes(body, "message"); result.Type == gjson.String {
		return result.Str
	}

	return ""
}

func toModelInfo(model Model) *domain.ModelInfo {
	info := &domain.ModelInfo{
		ID:      model.ID,
		OwnedBy: model.OwnedBy,
	}

	if model.MaxModelLen != nil && *model.MaxModelLen > 0 {
		info.MaxContextLength = model.MaxModelLen
	}

	if model.Created > 0 {
		createdTime := time.Unix(model.Created, 0)
		info.Created = &createdTime
	}

	return info
}
