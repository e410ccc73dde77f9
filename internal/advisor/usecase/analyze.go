package usecase

import (
	"context"
	"fmt"
	"strings"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
	"financial-agent/internal/agent/orchestrator"
	"financial-agent/internal/marketdata"
)

// AnalyzeStock runs the comprehensive single-stock analysis.
func (uc *implUseCase) AnalyzeStock(ctx context.Context, input advisor.AnalyzeStockInput) (advisor.AnalysisOutput, error) {
	ticker, ok := marketdata.NormalizeTicker(input.Ticker)
	if !ok {
		return advisor.AnalysisOutput{}, advisor.ErrInvalidTicker
	}

	return uc.analyze(ctx, []string{ticker}, orchestrator.Input{
		Query:     fmt.Sprintf(advisor.AnalyzeStockQueryFmt, ticker),
		SessionID: fmt.Sprintf(advisor.SummarySessionFmt, ticker),
	})
}

// Compare runs a side by side analysis of 2 to 5 tickers.
func (uc *implUseCase) Compare(ctx context.Context, input advisor.CompareInput) (advisor.AnalysisOutput, error) {
	tickers, err := normalizeAll(input.Tickers)
	if err != nil {
		return advisor.AnalysisOutput{}, err
	}
	if len(tickers) < advisor.MinCompareTickers {
		return advisor.AnalysisOutput{}, advisor.ErrTooFewTickers
	}
	if len(tickers) > advisor.MaxCompareTickers {
		return advisor.AnalysisOutput{}, advisor.ErrTooManyTickers
	}

	return uc.analyze(ctx, tickers, orchestrator.Input{
		Query:     fmt.Sprintf(advisor.CompareQueryFmt, strings.Join(tickers, ", ")),
		SessionID: fmt.Sprintf(advisor.CompareSessionFmt, strings.Join(tickers, "-")),
	})
}

// AnalyzePortfolio reviews a set of holdings against the user's goals.
func (uc *implUseCase) AnalyzePortfolio(ctx context.Context, input advisor.PortfolioInput) (advisor.PortfolioOutput, error) {
	tickers, err := normalizeAll(input.Tickers)
	if err != nil {
		return advisor.PortfolioOutput{}, err
	}
	if len(tickers) == 0 {
		return advisor.PortfolioOutput{}, advisor.ErrEmptyPortfolio
	}
	risk, err := riskTolerance(input.RiskTolerance)
	if err != nil {
		return advisor.PortfolioOutput{}, err
	}
	goals := strings.TrimSpace(input.Goals)

	out, err := uc.analyze(ctx, tickers, orchestrator.Input{
		Query:     fmt.Sprintf(advisor.PortfolioQueryFmt, strings.Join(tickers, ", "), goals, risk),
		SessionID: advisor.PortfolioSessionID,
	})
	if err != nil {
		return advisor.PortfolioOutput{}, err
	}
	return advisor.PortfolioOutput{
		AnalysisOutput: out,
		Goals:          goals,
		RiskTolerance:  risk,
	}, nil
}

// analyze runs a canned query. Unlike Chat, a generation failure is an error
// here since there is no partial answer worth returning.
func (uc *implUseCase) analyze(ctx context.Context, tickers []string, in orchestrator.Input) (advisor.AnalysisOutput, error) {
	out, err := uc.resolver.Resolve(ctx, in)
	if err != nil {
		switch {
		case orchestrator.IsUnavailable(err):
			return advisor.AnalysisOutput{}, advisor.ErrGenerationUnavailable
		case orchestrator.IsGenerationError(err):
			uc.l.Errorf(ctx, "uc.analyze %s: %v", in.SessionID, err)
			return advisor.AnalysisOutput{}, fmt.Errorf("%w: %v", advisor.ErrGenerationFailed, err)
		default:
			return advisor.AnalysisOutput{}, err
		}
	}

	return advisor.AnalysisOutput{
		Tickers:     tickers,
		Analysis:    out.ResponseText,
		DataSources: dataSources(out.Dataset),
		Timestamp:   out.Timestamp,
	}, nil
}

// dataSources lists the kinds present in ds in canonical order.
func dataSources(ds agent.Dataset) []agent.ToolKind {
	kinds := make([]agent.ToolKind, 0, len(ds))
	for _, k := range agent.ToolKinds() {
		if _, ok := ds[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// normalizeAll uppercases and validates tickers, dropping duplicates.
func normalizeAll(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		t, ok := marketdata.NormalizeTicker(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %q", advisor.ErrInvalidTicker, raw)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

func riskTolerance(s string) (string, error) {
	switch r := strings.ToLower(strings.TrimSpace(s)); r {
	case "":
		return advisor.RiskModerate, nil
	case advisor.RiskConservative, advisor.RiskModerate, advisor.RiskAggressive:
		return r, nil
	default:
		return "", advisor.ErrInvalidRiskTolerance
	}
}
