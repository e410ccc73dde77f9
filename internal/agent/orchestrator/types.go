package orchestrator

import (
	"time"

	"financial-agent/internal/agent"
)

// Input is one user turn.
type Input struct {
	Query       string
	SessionID   string
	UserContext agent.UserContext
}

// Output is the response envelope. On fatal failures Error is set and
// ResponseText carries a readable explanation.
type Output struct {
	ResponseText string        `json:"response"`
	Dataset      agent.Dataset `json:"financial_data_used"`
	SessionID    string        `json:"session_id"`
	Timestamp    time.Time     `json:"timestamp"`
	Error        string        `json:"error,omitempty"`
}

// Options tune context assembly and history bookkeeping.
type Options struct {
	RecentWindow    int
	SummaryMaxChars int
	Now             func() time.Time
}

// availability is implemented by generation backends that can report they
// have nothing configured.
type availability interface {
	Available() bool
}
