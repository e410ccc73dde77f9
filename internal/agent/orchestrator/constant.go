package orchestrator

// Log prefixes
const (
	LogPrefixResolve = "internal.agent.orchestrator.Resolve"
)

// System prompt. Placeholders: current date, current quarter.
const (
	SystemPromptTemplate = `You are a financial research assistant with live market data.

Today is %s and the current fiscal calendar quarter is %s. Treat every date
relative to today: "upcoming" means after today, "recent" means the last few weeks.

You can help with:
- Company overviews, price action and trading metrics
- Historical performance and trend analysis
- Income statements, balance sheets and cash flows
- Side by side company comparisons
- News, upcoming earnings and scheduled events
- Analyst recommendations and recent upgrades or downgrades

How to answer:
- Base the analysis on the financial data supplied with the question. It is current.
- Quote concrete figures, ratios and dates from that data.
- When a data section is marked unavailable, say what is missing and answer with what remains.
- Do not claim you lack market access when data was supplied.
- Keep the language professional and readable.
- State clearly that recommendations are not financial advice.`
)

// Context sections
const (
	SectionQuery        = "User Query: "
	SectionData         = "Financial Data Available:"
	SectionUserContext  = "User Context:"
	SectionConversation = "Previous Conversation:"
	NoDataNotice        = "No financial data was retrieved for this query."
)

// Response messages
const (
	MsgGenerationUnavailable = "The AI analysis service is not configured. Please set up a generation provider and try again."
	MsgGenerationFailed      = "Sorry, I could not complete the analysis of %q. Please try again shortly."
)

// Configuration
const (
	DefaultSessionID       = "default"
	DefaultRecentWindow    = 3
	DefaultSummaryMaxChars = 500
	DateFormatISO          = "2006-01-02"

	tracerName = "financial-agent/internal/agent/orchestrator"
)
