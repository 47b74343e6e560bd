package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the trip agent.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Search    SearchConfig    `mapstructure:"search"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug          bool          `mapstructure:"debug"`
	LogLevel       string        `mapstructure:"log_level"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address       string  `mapstructure:"address"`
	RatePerMinute float64 `mapstructure:"rate_per_minute"`
	RateBurst     int     `mapstructure:"rate_burst"`
}

// LLMConfig contains completion provider configurations
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"` // openai, anthropic, gemini
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
	// Keys loaded for provider types that are not wired yet. The original
	// deployment carried them alongside the OpenAI key.
	GroqAPIKey   string `mapstructure:"groq_api_key"`
	GoogleAPIKey string `mapstructure:"google_api_key"`
}

// SearchConfig contains web search provider settings
type SearchConfig struct {
	Provider   string        `mapstructure:"provider"` // tavily, brave, serper
	APIKey     string        `mapstructure:"api_key"`
	MaxResults int           `mapstructure:"max_results"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// TelemetryConfig contains metrics settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("tripagent")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TRIPAGENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Config file is optional - defaults plus env are enough to run
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	overrideFromEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("general.debug", false)
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.default_timeout", "60s")

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.rate_per_minute", 20)
	viper.SetDefault("server.rate_burst", 5)

	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("llm.max_tokens", 4096)
	viper.SetDefault("llm.timeout", "90s")

	viper.SetDefault("search.provider", "tavily")
	viper.SetDefault("search.max_results", 7)
	viper.SetDefault("search.timeout", "30s")

	viper.SetDefault("telemetry.enabled", true)
}

// overrideFromEnv overrides configuration with environment variables holding
// provider credentials. These use the providers' conventional names rather
// than the TRIPAGENT_ prefix.
func overrideFromEnv() {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		viper.Set("llm.api_key", apiKey)
	}
	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		viper.Set("llm.groq_api_key", apiKey)
	}
	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		viper.Set("llm.google_api_key", apiKey)
	}
	// Search key follows the configured provider
	searchEnv := map[string]string{
		"tavily": "TAVILY_API_KEY",
		"brave":  "BRAVE_SEARCH_KEY",
		"serper": "SERPER_API_KEY",
	}
	if env, ok := searchEnv[viper.GetString("search.provider")]; ok {
		if apiKey := os.Getenv(env); apiKey != "" {
			viper.Set("search.api_key", apiKey)
		}
	}
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	if config.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (set OPENAI_API_KEY)")
	}
	if config.Search.APIKey == "" {
		return fmt.Errorf("search.api_key is required (set TAVILY_API_KEY)")
	}
	if config.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be > 0")
	}
	return nil
}
