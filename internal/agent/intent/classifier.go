package intent

import (
	"strconv"
	"strings"

	"financial-agent/internal/agent"
)

// Classifier maps a query and its tickers onto data requests using keyword rules.
type Classifier struct {
	kw Keywords
}

var _ agent.DataNeedClassifier = (*Classifier)(nil)

// NewClassifier builds a Classifier from the keyword sets of lex.
func NewClassifier(lex Lexicon) *Classifier {
	return &Classifier{kw: lex.Keywords}
}

// Classify fires every matching rule in a fixed order. STOCK_INFO is added
// when nothing else fired or when the query asks for an overview. An empty
// ticker list yields no requests.
func (c *Classifier) Classify(text string, tickers []string) []agent.DataRequest {
	if len(tickers) == 0 {
		return nil
	}
	q := strings.ToLower(text)
	primary := tickers[0]

	var reqs []agent.DataRequest

	if containsAny(q, c.kw.Compare) {
		n := min(len(tickers), MaxCompareTickers)
		reqs = append(reqs, agent.DataRequest{
			Kind:    agent.ToolCompare,
			Tickers: append([]string(nil), tickers[:n]...),
		})
	}

	if containsAny(q, c.kw.Historical) {
		reqs = append(reqs, agent.DataRequest{
			Kind:   agent.ToolHistorical,
			Ticker: primary,
			Params: map[string]string{
				agent.ParamPeriod:   c.period(q),
				agent.ParamInterval: agent.DefaultInterval,
			},
		})
	}

	if containsAny(q, c.kw.Statements) {
		reqs = append(reqs, agent.DataRequest{
			Kind:   agent.ToolStatements,
			Ticker: primary,
			Params: map[string]string{
				agent.ParamStatementType: c.statementType(q),
				agent.ParamQuarterly:     strconv.FormatBool(containsAny(q, c.kw.Quarterly)),
			},
		})
	}

	if containsAny(q, c.kw.News) {
		reqs = append(reqs, agent.DataRequest{
			Kind:   agent.ToolNews,
			Ticker: primary,
			Params: map[string]string{agent.ParamLimit: strconv.Itoa(agent.DefaultNewsLimit)},
		})
	}

	if containsAny(q, c.kw.UpcomingEvents) {
		reqs = append(reqs, agent.DataRequest{Kind: agent.ToolUpcomingEvents, Ticker: primary})
	}

	if containsAny(q, c.kw.Recommendations) {
		reqs = append(reqs, agent.DataRequest{Kind: agent.ToolRecommendations, Ticker: primary})
	}

	if len(reqs) == 0 || containsAny(q, c.kw.Overview) {
		reqs = append(reqs, agent.DataRequest{Kind: agent.ToolStockInfo, Ticker: primary})
	}

	return reqs
}

func (c *Classifier) period(q string) string {
	for _, rule := range c.kw.Periods {
		if containsAny(q, rule.Keywords) {
			return rule.Period
		}
	}
	return agent.DefaultPeriod
}

func (c *Classifier) statementType(q string) string {
	switch {
	case containsAny(q, c.kw.BalanceSheet):
		return agent.StatementBalanceSheet
	case containsAny(q, c.kw.CashFlow):
		return agent.StatementCashFlow
	default:
		return agent.StatementIncome
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
