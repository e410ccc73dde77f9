package oaicompat

import "time"

// Known vendors speaking the chat completions protocol.
const (
	VendorOpenAI   = "openai"
	VendorQwen     = "qwen"
	VendorDeepSeek = "deepseek"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// vendorDefaults maps a vendor to its base URL and default model.
var vendorDefaults = map[string]struct {
	baseURL string
	model   string
}{
	VendorOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
	VendorQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	VendorDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
}
