package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"financial-agent/internal/agent"
	"financial-agent/internal/agent/intent"
)

func TestExtractor_Extract(t *testing.T) {
	ex := intent.NewExtractor(intent.DefaultLexicon())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"dollar symbol", "What do you think of $AAPL right now?", []string{"AAPL"}},
		{"lowercase dollar symbol", "thoughts on $nvda", []string{"NVDA"}},
		{"dollar symbol too short", "is $A worth it", nil},
		{"symbol then noun", "Is MSFT stock a buy?", []string{"MSFT"}},
		{"noun then symbol", "look up ticker AMD for me", []string{"AMD"}},
		{"pair comparison", "AAPL vs MSFT", []string{"AAPL", "MSFT"}},
		{"pair versus ordering", "amd versus intc", []string{"AMD", "INTC"}},
		{"bare symbols keep order", "Compare AAPL MSFT GOOGL AMZN news", []string{"AAPL", "MSFT", "GOOGL", "AMZN"}},
		{"dollar first then bare", "NVDA and $AMD", []string{"AMD", "NVDA"}},
		{"duplicates collapse", "$AAPL AAPL stock AAPL", []string{"AAPL"}},
		{"stop words only", "WHAT ABOUT THE STOCK MARKET", nil},
		{"company name falls back to table", "What's the latest news on Tesla?", []string{"TSLA"}},
		{"company name before noun falls back", "how is apple stock doing", []string{"AAPL"}},
		{"table order preserved", "netflix or microsoft", []string{"MSFT", "NFLX"}},
		{"no tickers at all", "how are markets doing today", nil},
		{"lowercase bare symbols", "compare aapl and msft", []string{"AAPL", "MSFT"}},
		{"lowercase bare symbol after stop words", "latest news on nvda", []string{"NVDA"}},
		{"lowercase bare symbol at end", "what is the outlook for amd", []string{"AMD"}},
		{"mixed case bare symbol", "Nvda earnings", []string{"NVDA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.text)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_CustomLexicon(t *testing.T) {
	lex := intent.DefaultLexicon()
	lex.StopWords = append(lex.StopWords, "CEO")
	lex.Companies = append(lex.Companies, intent.CompanyAlias{Name: "Palantir", Ticker: "pltr"})
	ex := intent.NewExtractor(lex)

	assert.Empty(t, ex.Extract("who is the CEO"))
	assert.Equal(t, []string{"PLTR"}, ex.Extract("what does palantir do"))
}

func TestExtractor_LowercaseQueryResolvesRequests(t *testing.T) {
	lex := intent.DefaultLexicon()
	ex := intent.NewExtractor(lex)
	cl := intent.NewClassifier(lex)

	tickers := ex.Extract("latest news on nvda")
	assert.Equal(t, []string{"NVDA"}, tickers)

	reqs := cl.Classify("latest news on nvda", tickers)
	if assert.Len(t, reqs, 1) {
		assert.Equal(t, agent.ToolNews, reqs[0].Kind)
		assert.Equal(t, "NVDA", reqs[0].Ticker)
	}
}
