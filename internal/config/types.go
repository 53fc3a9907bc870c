package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Endpoint   EndpointConfig   `yaml:"endpoint" mapstructure:"endpoint"`
	Completion CompletionConfig `yaml:"completion" mapstructure:"completion"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// EndpointConfig identifies the inference endpoint under test
type EndpointConfig struct {
	URL     string        `yaml:"url" mapstructure:"url"`
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// CompletionConfig holds the fixed completion probe parameters
type CompletionConfig struct {
	Model       string  `yaml:"model" mapstructure:"model"`
	Prompt      string  `yaml:"prompt" mapstructure:"prompt"`
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// LoggingConfig holds logger bootstrap settings
type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Dir        string `yaml:"dir" mapstructure:"dir"`
	Theme      string `yaml:"theme" mapstructure:"theme"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	FileOutput bool   `yaml:"file_output" mapstructure:"file_output"`
}

// Validate checks the configuration for values the checks cannot work with
func (c *Config) Validate() error {
	if c.Endpoint.URL == "" {
		return fmt.Errorf("endpoint.url is required")
	}

	parsed, err := url.Parse(c.Endpoint.URL)
	if err != nil {
		return fmt.Errorf("endpoint.url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("endpoint.url must be http or https, got %q", parsed.Scheme)
	}

	if c.Endpoint.Timeout <= 0 {
		return fmt.Errorf("endpoint.timeout must be positive")
	}

	if c.Completion.Model == "" {
		return fmt.Errorf("completion.model is required")
	}
	if c.Completion.MaxTokens <= 0 {
		return fmt.Errorf("completion.max_tokens must be positive")
	}
	if c.Completion.Temperature < 0 || c.Completion.Temperature > 2 {
		return fmt.Errorf("completion.temperature must be between 0 and 2")
	}

	return nil
}

// BaseURL returns the endpoint URL without a trailing slash so request
// paths can be appended directly
func (c *EndpointConfig) BaseURL() string {
	return strings.TrimRight(c.URL, "/")
}
