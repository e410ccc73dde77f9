package yahoo

import "time"

const (
	businessSummaryMaxChars = 500
	recentChangesWindow     = 6 * 30 * 24 * time.Hour
	dataFreshness           = "Real-time from Yahoo Finance"
	eventsNote              = "For specific upcoming events, recent news and earnings announcements should be checked"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

const (
	logPrefixCompare   = "internal.marketdata.yahoo.Compare"
)

// compareSections is the lookup order for comparison metrics.
var compareSections = []string{
	"price_data",
	"financial_metrics",
	"financial_health",
	"dividends_earnings",
}
