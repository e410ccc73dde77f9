package dispatcher

import "time"

const (
	LogPrefixDispatch = "internal.agent.dispatcher.Dispatch"
	LogPrefixFetch    = "internal.agent.dispatcher.fetch"

	DefaultFetchTimeout   = 15 * time.Second
	DefaultMaxConcurrency = 8

	tracerName = "financial-agent/internal/agent/dispatcher"
)

// Failure reasons
const (
	ReasonTimeout     = "timeout"
	ReasonCanceled    = "canceled"
	ReasonEmptyResult = "empty result"
	ReasonPanic       = "provider panic"
	ReasonUnsupported = "unsupported tool kind"
	ReasonBadRequest  = "invalid request"
)
