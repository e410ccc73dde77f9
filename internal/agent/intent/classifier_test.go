package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financial-agent/internal/agent"
	"financial-agent/internal/agent/intent"
)

func kinds(reqs []agent.DataRequest) []agent.ToolKind {
	out := make([]agent.ToolKind, len(reqs))
	for i, r := range reqs {
		out[i] = r.Kind
	}
	return out
}

func TestClassifier_EmptyTickers(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())
	assert.Empty(t, c.Classify("compare the latest news and analyst ratings", nil))
	assert.Empty(t, c.Classify("anything", []string{}))
}

func TestClassifier_CompareAndNews(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())

	reqs := c.Classify("compare AAPL MSFT GOOGL AMZN news", []string{"AAPL", "MSFT", "GOOGL", "AMZN"})
	require.Equal(t, []agent.ToolKind{agent.ToolCompare, agent.ToolNews}, kinds(reqs))
	assert.Equal(t, []string{"AAPL", "MSFT", "GOOGL"}, reqs[0].Tickers)
	assert.Equal(t, "AAPL", reqs[1].Ticker)
	assert.Equal(t, "10", reqs[1].Param(agent.ParamLimit, ""))
}

func TestClassifier_DefaultsToStockInfo(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())

	reqs := c.Classify("thoughts on NVDA?", []string{"NVDA"})
	require.Len(t, reqs, 1)
	assert.Equal(t, agent.ToolStockInfo, reqs[0].Kind)
	assert.Equal(t, "NVDA", reqs[0].Ticker)
}

func TestClassifier_OverviewAddsStockInfo(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())

	reqs := c.Classify("give me an overview and recent news for AAPL", []string{"AAPL"})
	assert.Equal(t, []agent.ToolKind{agent.ToolNews, agent.ToolStockInfo}, kinds(reqs))
}

func TestClassifier_HistoricalPeriod(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())

	tests := []struct {
		text   string
		period string
	}{
		{"AAPL price history over 6 months", "6mo"},
		{"AAPL 3m chart", "3mo"},
		{"AAPL performance over 2 years", "2y"},
		{"AAPL historical prices", "1y"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			reqs := c.Classify(tt.text, []string{"AAPL"})
			require.NotEmpty(t, reqs)
			assert.Equal(t, agent.ToolHistorical, reqs[0].Kind)
			assert.Equal(t, tt.period, reqs[0].Param(agent.ParamPeriod, ""))
			assert.Equal(t, "1d", reqs[0].Param(agent.ParamInterval, ""))
		})
	}
}

func TestClassifier_Statements(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())

	tests := []struct {
		text      string
		stmt      string
		quarterly string
	}{
		{"MSFT income statement", agent.StatementIncome, "false"},
		{"MSFT quarterly balance sheet", agent.StatementBalanceSheet, "true"},
		{"MSFT cash flow for q2", agent.StatementCashFlow, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			reqs := c.Classify(tt.text, []string{"MSFT"})
			require.NotEmpty(t, reqs)
			assert.Equal(t, agent.ToolStatements, reqs[0].Kind)
			assert.Equal(t, tt.stmt, reqs[0].Param(agent.ParamStatementType, ""))
			assert.Equal(t, tt.quarterly, reqs[0].Param(agent.ParamQuarterly, ""))
		})
	}
}

func TestClassifier_AllRulesFireInOrder(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())

	text := "compare TSLA vs F: chart, income, news, upcoming earnings, analyst rating, overview"
	reqs := c.Classify(text, []string{"TSLA", "F"})
	assert.Equal(t, agent.ToolKinds(), kinds(reqs))
}

func TestClassifier_SingleTickerCompare(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultLexicon())

	reqs := c.Classify("compare AAPL against peers", []string{"AAPL"})
	require.Len(t, reqs, 1)
	assert.Equal(t, []string{"AAPL"}, reqs[0].Tickers)
}
