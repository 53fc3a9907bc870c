package check

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thushan/scout/internal/config"
	"github.com/thushan/scout/internal/core/domain"
	"github.com/thushan/scout/internal/logger"
	"github.com/thushan/scout/theme"
)

func createTestLogger() *logger.StyledLogger {
	slogLogger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	return logger.NewStyledLogger(slogLogger, theme.Default())
}

func testConfig(serverURL string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Endpoint.URL = serverURL + "/v1"
	cfg.Endpoint.Timeout = 5 * time.Second
	cfg.Completion.Model = "test-model"
	return cfg
}

func TestAvailabilityCheck_Pass(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/models", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"object": "list",
			"data": [
				{"id": "test-model", "object": "model", "owned_by": "vllm", "max_model_len": 1048576},
				{"id": "other-model", "object": "model", "owned_by": "meta"}
			]
		}`))
	}))
	defer server.Close()

	result := NewAvailabilityCheck(testConfig(server.URL), createTestLogger()).Run(context.Background())

	assert.Equal(t, AvailabilityCheckName, result.Name)
	assert.Equal(t, domain.CheckPassed, result.Status)
	assert.True(t, result.Passed())
	assert.NoError(t, result.Error)
	assert.Greater(t, result.Latency, time.Duration(0))

	detail := strings.Join(result.Detail, "\n")
	assert.Contains(t, detail, "found 2 models")
	assert.Contains(t, detail, "test-model (max context: 1048576, owner: vllm)")
	assert.Contains(t, detail, "other-model (max context: unknown, owner: meta)")
}

func TestAvailabilityCheck_Fail(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		closeServer  bool
		expectedType string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`{"error": "upstream down"}`))
			},
			expectedType: "error_type: server_error",
		},
		{
			name: "auth rejected",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error": {"message": "bad key"}}`))
			},
			expectedType: "error_type: client_error",
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json at all`))
			},
			expectedType: "error_type: parse",
		},
		{
			name:         "connection refused",
			handler:      func(w http.ResponseWriter, r *http.Request) {},
			closeServer:  true,
			expectedType: "error_type: network",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			if tt.closeServer {
				server.Close()
			} else {
				defer server.Close()
			}

			result := NewAvailabilityCheck(testConfig(server.URL), createTestLogger()).Run(context.Background())

			assert.Equal(t, domain.CheckFailed, result.Status)
			assert.False(t, result.Passed())
			require.Error(t, result.Error)
			assert.Contains(t, strings.Join(result.Detail, "\n"), tt.expectedType)
		})
	}
}

func TestCompletionCheck_Pass(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hi there! I am test-model."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 21, "completion_tokens": 8, "total_tokens": 29}
		}`))
	}))
	defer server.Close()

	result := NewCompletionCheck(testConfig(server.URL), createTestLogger()).Run(context.Background())

	assert.Equal(t, CompletionCheckName, result.Name)
	assert.Equal(t, domain.CheckPassed, result.Status)

	detail := strings.Join(result.Detail, "\n")
	assert.Contains(t, detail, "model: test-model")
	assert.Contains(t, detail, "response: Hi there! I am test-model.")
	assert.Contains(t, detail, "usage: prompt=21 completion=8 total=29")
}

func TestCompletionCheck_SendsConfiguredParameters(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{
			"model": "custom-model",
			"choices": [{"message": {"role": "assistant", "content": "ok"}}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Completion.Model = "custom-model"
	cfg.Completion.Prompt = "Say hello"
	cfg.Completion.MaxTokens = 42
	cfg.Completion.Temperature = 0.3

	result := NewCompletionCheck(cfg, createTestLogger()).Run(context.Background())
	require.Equal(t, domain.CheckPassed, result.Status)

	assert.Contains(t, gotBody, `"model":"custom-model"`)
	assert.Contains(t, gotBody, `"content":"Say hello"`)
	assert.Contains(t, gotBody, `"max_tokens":42`)
	assert.Contains(t, gotBody, `"temperature":0.3`)
	assert.Contains(t, gotBody, `"stream":false`)
}

func TestCompletionCheck_ZeroTemperatureSentOnWire(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{
			"model": "test-model",
			"choices": [{"message": {"role": "assistant", "content": "ok"}}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Completion.Temperature = 0

	result := NewCompletionCheck(cfg, createTestLogger()).Run(context.Background())
	require.Equal(t, domain.CheckPassed, result.Status)

	assert.Contains(t, gotBody, `"temperature":0`)
}

func TestCompletionCheck_Fail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "model not found"}`))
	}))
	defer server.Close()

	result := NewCompletionCheck(testConfig(server.URL), createTestLogger()).Run(context.Background())

	assert.Equal(t, domain.CheckFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "model not found")
}

func TestSkipped(t *testing.T) {
	result := Skipped(CompletionCheckName)

	assert.Equal(t, CompletionCheckName, result.Name)
	assert.Equal(t, domain.CheckSkipped, result.Status)
	assert.False(t, result.Passed())
	assert.NoError(t, result.Error)
}

func TestTruncateContent(t *testing.T) {
	assert.Equal(t, "short", truncateContent("  short  "))

	long := strings.Repeat("a", maxContentDetail+50)
	got := truncateContent(long)
	assert.Equal(t, maxContentDetail+1, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
