package intent

const (
	MaxCompareTickers = 3

	minTickerLen = 2
)

// Ticker patterns, applied in this order against the uppercased text.
const (
	patternDollar     = `\$([A-Z]{1,5})\b`
	patternSymbolNoun = `\b([A-Z]{2,5})\s+(?:STOCKS?|SHARES?|TICKER|COMPANY)\b`
	patternNounSymbol = `\b(?:STOCK|TICKER|SYMBOL)\s+([A-Z]{2,5})\b`
	patternPair       = `\b([A-Z]{2,5})\s+(?:VS?\.?|VERSUS|COMPARED?)\s+([A-Z]{2,5})\b`
	patternBare       = `\b([A-Z]{2,5})\b`
)
