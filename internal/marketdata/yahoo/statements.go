package yahoo

import (
	"context"
	"fmt"

	"financial-agent/internal/marketdata"
	pkgYahoo "financial-agent/pkg/yahoo"
)

type statementSource struct {
	annual    string
	quarterly string
	listKey   string
}

var statementSources = map[string]statementSource{
	"income_stmt": {
		annual:    pkgYahoo.ModuleIncomeStatementHistory,
		quarterly: pkgYahoo.ModuleIncomeStatementQuarterly,
		listKey:   "incomeStatementHistory",
	},
	"balance_sheet": {
		annual:    pkgYahoo.ModuleBalanceSheetHistory,
		quarterly: pkgYahoo.ModuleBalanceSheetQuarterly,
		listKey:   "balanceSheetStatements",
	},
	"cashflow": {
		annual:    pkgYahoo.ModuleCashflowStatementHistory,
		quarterly: pkgYahoo.ModuleCashflowStatementQuaterly,
		listKey:   "cashflowStatements",
	},
}

// FinancialStatements returns one row per reporting period, newest first.
func (p *implProvider) FinancialStatements(ctx context.Context, ticker, statementType string, quarterly bool) (marketdata.Document, error) {
	src, ok := statementSources[statementType]
	if !ok {
		return nil, fmt.Errorf("statement type %q: %w", statementType, marketdata.ErrInvalidArgument)
	}
	module := src.annual
	if quarterly {
		module = src.quarterly
	}

	summary, err := p.client.QuoteSummary(ctx, ticker, module)
	if err != nil {
		return nil, wrap(ticker, err)
	}

	list, _ := pkgYahoo.Module(summary, module)[src.listKey].([]any)
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: no %s data: %w", ticker, statementType, marketdata.ErrNoData)
	}

	rows := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		row := map[string]any{"date": formattedDate(m["endDate"])}
		for k, v := range m {
			if k == "endDate" || k == "maxAge" {
				continue
			}
			row[k] = pkgYahoo.Raw(v)
		}
		rows = append(rows, row)
	}

	return marketdata.Document{
		"ticker":         ticker,
		"statement_type": statementType,
		"quarterly":      quarterly,
		"data":           rows,
	}, nil
}

// formattedDate prefers the "fmt" rendering of a Yahoo date value.
func formattedDate(v any) any {
	if m, ok := v.(map[string]any); ok {
		if s, ok := m["fmt"].(string); ok {
			return s
		}
		return m["raw"]
	}
	return v
}
