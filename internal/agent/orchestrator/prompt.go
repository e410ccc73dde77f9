package orchestrator

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"financial-agent/internal/agent"
	"financial-agent/internal/marketdata"
)

// buildSystemPrompt stamps the current date and quarter into the system prompt.
func buildSystemPrompt(now time.Time) string {
	return fmt.Sprintf(SystemPromptTemplate, now.Format(DateFormatISO), marketdata.CurrentQuarter(now))
}

type historyEntry struct {
	UserQuery       string `json:"user_query"`
	ResponseSummary string `json:"response_summary"`
}

// buildContext assembles the query, the dataset with failures marked, the
// user context and recent history into the text sent for generation.
func buildContext(query string, ds agent.Dataset, uc agent.UserContext, history []agent.Exchange) string {
	var b strings.Builder

	b.WriteString(SectionQuery)
	b.WriteString(query)
	b.WriteString("\n\n")

	b.WriteString(SectionData)
	b.WriteString("\n")
	if len(ds) == 0 {
		b.WriteString(NoDataNotice)
	} else {
		b.WriteString(indentJSON(ds))
	}
	b.WriteString("\n")

	if len(uc) > 0 {
		b.WriteString("\n")
		b.WriteString(SectionUserContext)
		b.WriteString("\n")
		b.WriteString(indentJSON(uc))
		b.WriteString("\n")
	}

	if len(history) > 0 {
		entries := make([]historyEntry, len(history))
		for i, h := range history {
			entries[i] = historyEntry{UserQuery: h.UserQuery, ResponseSummary: h.ResponseSummary}
		}
		b.WriteString("\n")
		b.WriteString(SectionConversation)
		b.WriteString("\n")
		b.WriteString(indentJSON(entries))
		b.WriteString("\n")
	}

	return b.String()
}

func indentJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
