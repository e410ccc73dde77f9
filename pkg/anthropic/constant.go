package anthropic

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultBaseURL is the default Messages API endpoint root
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// APIVersion is sent in the anthropic-version header
	APIVersion = "2023-06-01"

	// DefaultMaxTokens is used when a request leaves MaxTokens unset
	DefaultMaxTokens = 2000

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
