package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newAnthropicImpl creates a new Anthropic implementation
func newAnthropicImpl(cfg Config) *anthropicImpl {
	return &anthropicImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the Messages API
func (a *anthropicImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("anthropic: at least one message is required")
	}

	body, err := json.Marshal(a.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", APIVersion)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to read response: %w", err)
	}

	var wire messagesResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(raw))
		}
		return nil, fmt.Errorf("anthropic: failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || wire.Error != nil {
		msg := string(raw)
		if wire.Error != nil {
			msg = wire.Error.Type + ": " + wire.Error.Message
		}
		return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, msg)
	}

	return transformResponse(&wire), nil
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

func (a *anthropicImpl) transformRequest(req *Request) messagesRequest {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	out := messagesRequest{
		Model:     a.model,
		System:    req.System,
		MaxTokens: maxTokens,
		Messages:  make([]wireMessage, 0, len(req.Messages)),
	}
	if req.Temperature > 0 {
		t := req.Temperature
		out.Temperature = &t
	}
	for _, m := range req.Messages {
		role := m.Role
		if role != "assistant" {
			role = "user"
		}
		out.Messages = append(out.Messages, wireMessage{Role: role, Content: m.Text})
	}
	return out
}

func transformResponse(wire *messagesResponse) *Response {
	var b strings.Builder
	for _, block := range wire.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return &Response{
		Text:       b.String(),
		StopReason: wire.StopReason,
		Usage: Usage{
			InputTokens:  wire.Usage.InputTokens,
			OutputTokens: wire.Usage.OutputTokens,
		},
	}
}
