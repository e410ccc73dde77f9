package marketdata

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Document is an opaque payload keyed by metric or section name.
type Document = map[string]any

// DefaultCompareMetrics are used by Compare when no metrics are requested.
var DefaultCompareMetrics = []string{
	"marketCap",
	"trailingPE",
	"priceToBook",
	"returnOnEquity",
	"profitMargins",
	"beta",
}

// Quote is the price snapshot the watchlist shows per symbol.
type Quote struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        int64
}

// QuoteFromStockInfo reads a Quote out of a StockInfo document.
func QuoteFromStockInfo(symbol string, doc Document) Quote {
	q := Quote{Symbol: symbol}
	if basic, ok := doc[SectionBasicInfo].(map[string]any); ok {
		q.Name, _ = basic["longName"].(string)
	}
	prices, ok := doc[SectionPriceData].(map[string]any)
	if !ok {
		return q
	}
	q.Price = Float(prices["currentPrice"])
	prev := Float(prices["previousClose"])
	q.Volume = int64(Float(prices["volume"]))
	if q.Price > 0 && prev > 0 {
		q.Change = q.Price - prev
		q.ChangePercent = q.Change / prev * 100
	}
	return q
}

// Float converts numeric document values to float64. Anything else is 0.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	default:
		return 0
	}
}

// CurrentQuarter renders t as "Q<n> <year>".
func CurrentQuarter(t time.Time) string {
	return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year())
}

var tickerPattern = regexp.MustCompile(`^[A-Z0-9^][A-Z0-9.\-=]{0,9}$`)

// NormalizeTicker trims and uppercases s and reports whether the result looks
// like an exchange symbol (AAPL, BRK.B, ^GSPC, EURUSD=X).
func NormalizeTicker(s string) (string, bool) {
	t := strings.ToUpper(strings.TrimSpace(s))
	return t, tickerPattern.MatchString(t)
}
