package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// Defaults mirror the askgenie deployment this tool was written against.
	// Override through scout.yaml or SCOUT_* environment variables.
	DefaultEndpointURL = "https://askgenie-api.oagpuservices.com/v1"
	DefaultAPIKey      = "dummy-key"
	DefaultModel       = "Llama-4-Maverick-17B-128E-Instruct-FP8"
	DefaultPrompt      = "Hello! Please respond with a brief greeting and tell me what you are."

	DefaultTimeout     = 30 * time.Second
	DefaultMaxTokens   = 100
	DefaultTemperature = 0.7
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			URL:     DefaultEndpointURL,
			APIKey:  DefaultAPIKey,
			Timeout: DefaultTimeout,
		},
		Completion: CompletionConfig{
			Model:       DefaultModel,
			Prompt:      DefaultPrompt,
			MaxTokens:   DefaultMaxTokens,
			Temperature: DefaultTemperature,
		},
		Logging: LoggingConfig{
			Level:      "info",
			FileOutput: false,
			Dir:        "./logs",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Theme:      "default",
		},
	}
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigName("scout")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// env overrides only bind when viper knows the keys exist
	bindDefaults(v, config)

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine, we run on defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if configFile := os.Getenv("SCOUT_CONFIG_FILE"); configFile != "" {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func bindDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("endpoint.url", config.Endpoint.URL)
	v.SetDefault("endpoint.api_key", config.Endpoint.APIKey)
	v.SetDefault("endpoint.timeout", config.Endpoint.Timeout)
	v.SetDefault("completion.model", config.Completion.Model)
	v.SetDefault("completion.prompt", config.Completion.Prompt)
	v.SetDefault("completion.max_tokens", config.Completion.MaxTokens)
	v.SetDefault("completion.temperature", config.Completion.Temperature)
	v.SetDefault("logging.level", config.Logging.Level)
	v.SetDefault("logging.file_output", config.Logging.FileOutput)
	v.SetDefault("logging.dir", config.Logging.Dir)
	v.SetDefault("logging.max_size", config.Logging.MaxSize)
	v.SetDefault("logging.max_backups", config.Logging.MaxBackups)
	v.SetDefault("logging.max_age", config.Logging.MaxAge)
	v.SetDefault("logging.theme", config.Logging.Theme)
}
