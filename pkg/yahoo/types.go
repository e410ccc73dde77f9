package yahoo

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

var (
	// ErrNotFound is returned when Yahoo has no data for a symbol
	ErrNotFound = errors.New("yahoo: symbol not found")

	// ErrRateLimited is returned on HTTP 429
	ErrRateLimited = errors.New("yahoo: rate limited")
)

// APIError carries a non-success response from Yahoo
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("yahoo: API error %d: %s: %s", e.StatusCode, e.Code, e.Description)
	}
	return fmt.Sprintf("yahoo: API error %d", e.StatusCode)
}

// Config holds client configuration
type Config struct {
	BaseURL    string
	UserAgent  string
	RatePerSec float64
	HTTPClient *http.Client
}

// Validate fills defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.RatePerSec < 0 {
		return fmt.Errorf("yahoo: RatePerSec must not be negative")
	}
	if c.RatePerSec == 0 {
		c.RatePerSec = DefaultRatePerSec
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type clientImpl struct {
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	httpClient *http.Client
}

// ChartResult holds OHLCV bars aligned by index with Timestamps
type ChartResult struct {
	Symbol     string
	Currency   string
	Timestamps []int64
	Open       []*float64
	High       []*float64
	Low        []*float64
	Close      []*float64
	Volume     []*int64
}

// NewsItem is one headline from the search endpoint
type NewsItem struct {
	UUID                string `json:"uuid"`
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
	Type                string `json:"type"`
}

// SearchResult holds the news slice of a search response
type SearchResult struct {
	News []NewsItem
}

// Wire types

type apiErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryEnvelope struct {
	QuoteSummary struct {
		Result []map[string]any `json:"result"`
		Error  *apiErrorBody    `json:"error"`
	} `json:"quoteSummary"`
}

type chartEnvelope struct {
	Chart struct {
		Result []chartResultWire `json:"result"`
		Error  *apiErrorBody     `json:"error"`
	} `json:"chart"`
}

type chartResultWire struct {
	Meta struct {
		Symbol   string `json:"symbol"`
		Currency string `json:"currency"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

type searchEnvelope struct {
	News []NewsItem `json:"news"`
}
