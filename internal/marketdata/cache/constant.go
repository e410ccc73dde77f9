package cache

import "time"

const (
	DefaultSize = 512
	DefaultTTL  = 5 * time.Minute
)

const (
	kindStockInfo       = "stock_info"
	kindHistorical      = "historical"
	kindStatements      = "statements"
	kindNews            = "news"
	kindEvents          = "events"
	kindRecommendations = "recommendations"
	kindCompare         = "compare"
)
