package agent

import "context"

// TickerExtractor pulls candidate ticker symbols out of free text.
type TickerExtractor interface {
	Extract(text string) []string
}

// DataNeedClassifier decides which fetches a query needs.
type DataNeedClassifier interface {
	Classify(text string, tickers []string) []DataRequest
}

// Dispatcher executes requests and reports one outcome per request.
type Dispatcher interface {
	Dispatch(ctx context.Context, reqs []DataRequest) Dataset
}

// GenerationClient turns a system prompt and assembled context into an answer.
type GenerationClient interface {
	Generate(ctx context.Context, systemPrompt, userContext string) (string, error)
}

// SessionStore keeps bounded conversation history per session id.
type SessionStore interface {
	Append(sessionID string, ex Exchange)
	History(sessionID string) []Exchange
	Recent(sessionID string, n int) []Exchange
	Clear(sessionID string)
}
