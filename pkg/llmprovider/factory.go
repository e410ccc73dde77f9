package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"financial-agent/config"
	"financial-agent/pkg/anthropic"
	"financial-agent/pkg/gemini"
	"financial-agent/pkg/log"
	"financial-agent/pkg/oaicompat"
)

// NewManagerFromConfig builds a Manager from config. A configuration with no
// usable providers yields a Manager whose Available reports false.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) *Manager {
	mcfg := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
		MaxTokens:       cfg.MaxTokens,
		Temperature:     cfg.Temperature,
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		logger.Warnf(ctx, "pkg.llmprovider.NewManagerFromConfig: generation disabled: %v", err)
		return NewManager(nil, mcfg, logger)
	}
	m := NewManager(providers, mcfg, logger)
	logger.Infof(ctx, "LLM providers ready: %s", strings.Join(m.Providers(), ", "))
	return m
}

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	httpClient := &http.Client{Timeout: parseDuration(cfg.Timeout, 60*time.Second)}

	switch strings.ToLower(cfg.Name) {
	case "anthropic", "claude":
		client, err := anthropic.New(anthropic.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case oaicompat.VendorOpenAI, oaicompat.VendorQwen, "alibaba", oaicompat.VendorDeepSeek:
		vendor := strings.ToLower(cfg.Name)
		if vendor == "alibaba" {
			vendor = oaicompat.VendorQwen
		}
		client, err := oaicompat.New(oaicompat.Config{
			Vendor:     vendor,
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", vendor, err)
		}
		return NewCompatAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
