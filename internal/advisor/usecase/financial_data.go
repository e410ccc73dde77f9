package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
	"financial-agent/internal/marketdata"
)

// FinancialData returns the raw provider document for one data type.
func (uc *implUseCase) FinancialData(ctx context.Context, input advisor.FinancialDataInput) (advisor.FinancialDataOutput, error) {
	ticker, ok := marketdata.NormalizeTicker(input.Ticker)
	if !ok {
		return advisor.FinancialDataOutput{}, advisor.ErrInvalidTicker
	}
	dataType := strings.ToLower(strings.TrimSpace(input.DataType))
	if dataType == "" {
		dataType = marketdata.DataTypeComprehensive
	}

	var (
		doc marketdata.Document
		err error
	)
	switch dataType {
	case marketdata.DataTypeComprehensive:
		doc, err = uc.market.StockInfo(ctx, ticker)
	case marketdata.DataTypeHistorical:
		period := input.Period
		if period == "" {
			period = advisor.DefaultHistoryPeriod
		}
		doc, err = uc.market.HistoricalPrices(ctx, ticker, period, agent.DefaultInterval)
	case marketdata.DataTypeStatements:
		doc, err = uc.market.FinancialStatements(ctx, ticker, agent.StatementIncome, false)
	case marketdata.DataTypeNews:
		doc, err = uc.market.News(ctx, ticker, agent.DefaultNewsLimit)
	case marketdata.DataTypeEvents:
		doc, err = uc.market.UpcomingEvents(ctx, ticker)
	case marketdata.DataTypeRecommendations:
		doc, err = uc.market.Recommendations(ctx, ticker)
	default:
		return advisor.FinancialDataOutput{}, advisor.ErrInvalidDataType
	}
	if err != nil {
		if errors.Is(err, marketdata.ErrInvalidArgument) {
			return advisor.FinancialDataOutput{}, fmt.Errorf("%w: %v", advisor.ErrInvalidDataType, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return advisor.FinancialDataOutput{}, ctxErr
		}
		uc.l.Warnf(ctx, "uc.FinancialData %s/%s: %v", ticker, dataType, err)
		return advisor.FinancialDataOutput{}, fmt.Errorf("%w: %v", advisor.ErrDataNotFound, err)
	}

	return advisor.FinancialDataOutput{Ticker: ticker, DataType: dataType, Data: doc}, nil
}
