package oaicompat

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Vendor selects default BaseURL and
// Model when those are empty; an unknown vendor requires both.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Vendor == "" {
		c.Vendor = VendorOpenAI
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s: APIKey is required", c.Vendor)
	}
	def, known := vendorDefaults[c.Vendor]
	if c.BaseURL == "" {
		if !known {
			return fmt.Errorf("%s: BaseURL is required for unknown vendor", c.Vendor)
		}
		c.BaseURL = def.baseURL
	}
	if c.Model == "" {
		if !known {
			return fmt.Errorf("%s: Model is required for unknown vendor", c.Vendor)
		}
		c.Model = def.model
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type clientImpl struct {
	vendor     string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a chat completion request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is one conversation turn ("user" or "assistant")
type Message struct {
	Role string
	Text string
}

// Response represents a chat completion response
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// OpenAI-compatible wire types
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
