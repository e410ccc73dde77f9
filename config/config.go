package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Tracing    TracingConfig

	// Generation backends
	LLM LLMConfig

	// Financial data
	MarketData MarketDataConfig
	Cache      CacheConfig

	// Agent
	Session SessionConfig
	Intent  IntentConfig

	// Watchlist
	Watchlist WatchlistConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	MaxTokens       int              `yaml:"max_tokens"`
	Temperature     float64          `yaml:"temperature"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// MarketDataConfig configures the upstream quote provider and the fetch dispatcher.
type MarketDataConfig struct {
	BaseURL         string
	UserAgent       string
	RequestTimeout  time.Duration
	FetchTimeout    time.Duration
	RateLimitPerSec float64
	MaxConcurrency  int
}

type CacheConfig struct {
	Enabled       bool
	Size          int
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// SessionConfig bounds the per-session conversation memory.
type SessionConfig struct {
	Capacity        int
	RecentWindow    int
	SummaryMaxChars int
	IdleTTL         time.Duration
}

type IntentConfig struct {
	LexiconPath string
}

type WatchlistConfig struct {
	DatabasePath string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.Tracing.Enabled = viper.GetBool("tracing.enabled")
	cfg.Tracing.ServiceName = viper.GetString("tracing.service_name")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.Providers = loadProviders()

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Market data
	cfg.MarketData.BaseURL = viper.GetString("market_data.base_url")
	cfg.MarketData.UserAgent = viper.GetString("market_data.user_agent")
	cfg.MarketData.RequestTimeout = viper.GetDuration("market_data.request_timeout")
	cfg.MarketData.FetchTimeout = viper.GetDuration("market_data.fetch_timeout")
	cfg.MarketData.RateLimitPerSec = viper.GetFloat64("market_data.rate_limit_per_sec")
	cfg.MarketData.MaxConcurrency = viper.GetInt("market_data.max_concurrency")

	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.RedisAddr = viper.GetString("cache.redis_addr")
	cfg.Cache.RedisPassword = viper.GetString("cache.redis_password")
	cfg.Cache.RedisDB = viper.GetInt("cache.redis_db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Cache.RedisAddr = redisAddr
	}

	// Agent
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.RecentWindow = viper.GetInt("session.recent_window")
	cfg.Session.SummaryMaxChars = viper.GetInt("session.summary_max_chars")
	cfg.Session.IdleTTL = viper.GetDuration("session.idle_ttl")
	cfg.Intent.LexiconPath = viper.GetString("intent.lexicon_path")

	// Watchlist
	cfg.Watchlist.DatabasePath = viper.GetString("watchlist.database_path")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.service_name", "financial-agent")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.max_tokens", 2000)
	viper.SetDefault("llm.temperature", 0.1)

	// Market data defaults
	viper.SetDefault("market_data.base_url", "https://query2.finance.yahoo.com")
	viper.SetDefault("market_data.user_agent", "Mozilla/5.0 (compatible; financial-agent/1.0)")
	viper.SetDefault("market_data.request_timeout", "10s")
	viper.SetDefault("market_data.fetch_timeout", "15s")
	viper.SetDefault("market_data.rate_limit_per_sec", 5)
	viper.SetDefault("market_data.max_concurrency", 8)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("cache.redis_db", 0)

	// Agent defaults
	viper.SetDefault("session.capacity", 10)
	viper.SetDefault("session.recent_window", 3)
	viper.SetDefault("session.summary_max_chars", 500)
	viper.SetDefault("session.idle_ttl", "0s")

	viper.SetDefault("watchlist.database_path", "watchlist.db")
}

// loadProviders reads llm.providers, falling back to flat API key variables
// when no provider list is configured.
func loadProviders() []ProviderConfig {
	var providers []ProviderConfig
	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				providers = append(providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}
	if len(providers) > 0 {
		return providers
	}

	if key := viper.GetString("anthropic_api_key"); key != "" {
		providers = append(providers, ProviderConfig{
			Name: "anthropic", Enabled: true, Priority: 1, APIKey: key,
			Model: "claude-3-5-sonnet-20241022", Timeout: "60s",
		})
	}
	if key := viper.GetString("gemini_api_key"); key != "" {
		providers = append(providers, ProviderConfig{
			Name: "gemini", Enabled: true, Priority: 2, APIKey: key,
			Model: "gemini-2.5-flash", Timeout: "60s",
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig checks provider entries. An empty provider list is valid:
// the service then runs with generation disabled.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
